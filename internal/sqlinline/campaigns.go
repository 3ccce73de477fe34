package sqlinline

const QGetCampaign = `--sql 81dd7800-de18-4d80-9525-c15d75d97c33
select id, title, description, goal_amount, collected_amount, created_at
from campaigns
where id = $1::bigint;
`

const QListCampaigns = `--sql dcc6e6e5-5712-4931-9c27-efb8647f6e21
select id, title, description, goal_amount, collected_amount, created_at
from campaigns
order by id;
`

const QCountCampaigns = `--sql 2471dddf-16dc-4e0f-886d-12520d9dcd34
select count(*) from campaigns;
`

// QAddToCampaignTotal increments the running total in place so concurrent
// donations to the same campaign serialize on the row instead of racing a
// read-modify-write.
const QAddToCampaignTotal = `--sql ee976cec-da1d-4e64-831d-ecd9622459e3
update campaigns
set collected_amount = collected_amount + $2::double precision
where id = $1::bigint
returning collected_amount;
`
