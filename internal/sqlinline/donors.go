package sqlinline

const QGetDonor = `--sql 71449816-31f2-4be1-b294-dc8e895f915b
select id, name, email, created_at
from donors
where id = $1::bigint;
`

const QListDonors = `--sql 8cedbd3f-25fa-454a-ac09-c713c52f9f6c
select id, name, email, created_at
from donors
order by id;
`

const QCountDonors = `--sql 741d20a8-63fb-4162-8f89-53c025d54a31
select count(*) from donors;
`
