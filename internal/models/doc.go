// Package models holds the domain state of the application and announces
// every state change through events.
//
// Models never reference presenters or views. The interfaces in this
// package list the operations and events a presenter relies on, so that
// presenters can be tested against doubles.
package models
