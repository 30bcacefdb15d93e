// Package presenters mediates between models and views.
//
// Each presenter is wired once by RegisterForEvents: view events are
// routed to handlers that convert form text into domain values and call
// the model, and model events are routed to view updates. Presenters
// never return errors. Every failure becomes exactly one ShowError call
// and a rejected submission never reaches the model.
package presenters
