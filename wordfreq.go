// Package wordfreq fetches a web page, extracts its visible text, segments it
// into words and reports word frequencies as tables and interactive charts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gse/, echarts/).
package wordfreq
