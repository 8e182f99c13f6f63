// Package services holds stateless domain services that operate across
// aggregates. PricingEngine turns route distances into a tariff quote.
package services
