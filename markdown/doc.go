// Package markdown linearizes analyzed pages into markdown. The assembler
// walks pages in order, classifies each composed line through a fixed
// priority cascade (code, heading, list, paragraph; tables are decided per
// page before line processing), drives the code-fence state machine, and
// joins the emitted units with blank lines, prepending a table of contents
// when requested.
package markdown
