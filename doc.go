// Package main provides the entry point for the GoFEDS data generator.
// GoFEDS produces synthetic relational business data for audit and
// data-analysis training: a project configures a business area through a
// cascade of settings, deliberate anomalies included, and a generation run
// populates the concrete tables, exports them as CSV and renders the
// specification document handed to the exercise participants. The
// application uses gorm for data persistence and cobra for its command
// line interface.
package main
