// Package database provides the PostgreSQL connection pool for the
// credential store.
//
// The bot keeps no market data and no user preferences in the database;
// the single pool serves the api_credentials table only.
package database
