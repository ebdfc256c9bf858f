/*
Package schema declares the shape of the brokerage database as data.

# Validated collections

  - users: email, firstName, lastName, password required
  - symbols: symbol, companyName, exchange required
  - orders: userId, symbolId, orderType, side, quantity required

Each CollectionSchema renders to a $jsonSchema validator and can also be
evaluated client-side with Check, so seed rows are rejected before they
reach the server.

# Indexes

	users           email (unique), status, createdAt
	symbols         symbol (unique), exchange, active
	orders          userId, symbolId, status, createdAt, (userId, status)
	holdings        userId, symbolId, (userId, symbolId) unique
	wallets         userId (unique)
	transactions    userId, type, status, createdAt, (userId, createdAt)
	userWatchlists  userId, symbolId, (userId, symbolId) unique

# Seed data

SeedSymbols returns AAPL, GOOGL, MSFT, TSLA and AMZN, all active and
stamped with the time passed in.
*/
package schema
