package postgres

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
)

// Builder is the squirrel statement builder configured for pgx ($1 placeholders).
var Builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns a free-text search term into an ILIKE pattern that
// matches the term as a literal substring.
func ContainsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

// NullableText maps the empty string to SQL NULL.
func NullableText(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// NullableJSON maps an empty document to SQL NULL and passes anything else
// as text so the server casts it to jsonb.
func NullableJSON(raw []byte) any {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil
	}
	return string(raw)
}
