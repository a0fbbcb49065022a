// Package links repoints intra-workbook hyperlinks at the exact roster row
// they name. Links aimed anywhere into the roster sheet are matched by
// their display text against the roster's entry names; matching is
// case-insensitive after whitespace normalization, unlike the reconciler's
// strict keys.
package links
