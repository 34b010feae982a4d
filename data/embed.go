package data

import (
	_ "embed"
)

//go:embed initdb/mysql/002-ddl-tables.sql
var InitdbMySQLTables string

//go:embed initdb/mysql/003-ddl-privileges.sql
var InitdbMySQLPrivileges string
