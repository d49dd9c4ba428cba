// Package cooktypes defines recipe and stock types for Cookbook.
// This file contains the data held by the application state.
package cooktypes

import (
	"strconv"
)

// Ingredient is a named quantity measured in a unit. It is used both for the
// ingredient list of a recipe and for an entry of the stock on hand.
type Ingredient struct {
	Name   string  `json:"name"`   // Ingredient name, matched exactly
	Unit   string  `json:"unit"`   // Unit the amount is measured in (e.g. "g", "cups")
	Amount float64 `json:"amount"` // Quantity in Unit
}

// FormattedAmount returns the amount in its shortest decimal representation.
func (i *Ingredient) FormattedAmount() string {
	return FormatAmount(i.Amount)
}

// Recipe is a named list of ingredients and the steps to prepare it.
type Recipe struct {
	Name        string       `json:"name"`
	Ingredients []Ingredient `json:"ingredients"`
	Steps       []string     `json:"steps"`
}

// FormatAmount renders a quantity without trailing zeros (2 -> "2", 0.5 -> "0.5").
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
