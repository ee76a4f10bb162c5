// Package model defines shared data types used across the move options bot.
//
// Conventions:
//   - User ids: int64, assigned by the chat transport
//   - Credential ids: uuid.UUID, assigned by the credential store
//   - Prices: strike prices pass through as strings (the exchange sends
//     them as decimal strings); mark price and turnover are float64
package model
