package schema

// LONGTEXT, the notes blob has no upper bound
const schema = `CREATE TABLE IF NOT EXISTS kv_store (
	storage_key VARCHAR(255) PRIMARY KEY,
	payload LONGTEXT
)`

const dropSchema = `DROP TABLE kv_store`
