package sqlinline

const QInsertDonation = `--sql 789608ed-8d46-4b1f-bf60-144d7620f97e
insert into donations(donor_id, campaign_id, amount, message, created_at)
values ($1::bigint, $2::bigint, $3::double precision, $4::text, now())
returning id, created_at;
`

const QGetDonation = `--sql 0f5991fb-3876-4991-848d-74ca813a864a
select d.id, d.donor_id, d.campaign_id, d.amount, d.message, d.created_at,
       r.name, r.email, r.created_at,
       c.title, c.description, c.goal_amount, c.collected_amount, c.created_at
from donations d
join donors r on r.id = d.donor_id
join campaigns c on c.id = d.campaign_id
where d.id = $1::bigint;
`

const QListDonationsByDonor = `--sql c7805a10-b351-4c09-83e7-52eb58d926cd
select d.id, d.donor_id, d.campaign_id, d.amount, d.message, d.created_at,
       r.name, r.email, r.created_at,
       c.title, c.description, c.goal_amount, c.collected_amount, c.created_at
from donations d
join donors r on r.id = d.donor_id
join campaigns c on c.id = d.campaign_id
where d.donor_id = $1::bigint
order by d.id;
`

const QListDonationsByCampaign = `--sql 60d13864-1c28-4c20-8834-8462313a56c8
select d.id, d.donor_id, d.campaign_id, d.amount, d.message, d.created_at,
       r.name, r.email, r.created_at,
       c.title, c.description, c.goal_amount, c.collected_amount, c.created_at
from donations d
join donors r on r.id = d.donor_id
join campaigns c on c.id = d.campaign_id
where d.campaign_id = $1::bigint
order by d.id;
`

const QTotalByDonor = `--sql 4d5ce23f-d3b8-487e-946d-44dfe9685d5e
select coalesce(sum(amount), 0)::double precision
from donations
where donor_id = $1::bigint;
`

const QCountDonations = `--sql 18048fed-62bd-4b35-b24e-f2f2764fce28
select count(*) from donations;
`

const QGrandTotalDonated = `--sql da6c6606-3e9a-4556-a56d-905d3dfae58d
select coalesce(sum(amount), 0)::double precision from donations;
`
