// Package export writes the individuals of a GEDCOM document in tabular and
// structured formats.
//
// [WriteCSV] produces one row per top-level individual with the columns
//
//	Name, Gender, Arbeit, Geburt, Tod, Kinder, Eltern (V,M)
//
// Birth and death dates are formatted with Options.DateLayout when the DATE
// value names a full calendar date; otherwise the raw value is written.
// Children and parents are joined with "; ".
//
// [WriteJSON] and [WriteYAML] encode [Person] summaries or query results for
// the CLI's --format flag and the HTTP API.
package export
