// Package firmlist extracts company records from saved rusprofile.ru
// search result pages and exports them as a semicolon-delimited CSV file.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, fs/).
package firmlist
