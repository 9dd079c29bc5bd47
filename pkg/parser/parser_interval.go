package parser

import (
	"strings"

	"github.com/paull87/mo-sql-parsing/pkg/core"
	"github.com/paull87/mo-sql-parsing/pkg/token"
)

// Interval literals arrive in several notations that must be detected by
// structure, not by a fixed grammar:
//
//	'1' DAY                          single value with unit
//	'1:1'                            clock form (hour:minute[:second])
//	'1-1'                            year-month dash form
//	'P1Y2M3DT4H5M6S'                 ISO-8601 duration
//	'P0001-02-03T04:05:06'           ISO-8601 alternative form
//	'-1 year -2 mons +3 days'        PostgreSQL verbose form
//	'@ 1 year 2 mons ago'            verbose form with ago suffix
//
// Each notation decomposes into signed (amount, unit) terms in descending
// unit order. A unit range after the string (MINUTE TO SECOND, DAY (3))
// becomes the type of a cast wrapped around the decomposed value.

// intervalUnits maps every accepted unit spelling to its canonical
// singular lower-case name.
var intervalUnits = map[string]string{
	"year": "year", "years": "year", "y": "year",
	"month": "month", "months": "month", "mon": "month", "mons": "month",
	"week": "week", "weeks": "week", "w": "week",
	"day": "day", "days": "day", "d": "day",
	"hour": "hour", "hours": "hour", "hr": "hour", "hrs": "hour", "h": "hour",
	"minute": "minute", "minutes": "minute", "min": "minute", "mins": "minute",
	"second": "second", "seconds": "second", "sec": "second", "secs": "second", "s": "second",
	"millisecond": "millisecond", "milliseconds": "millisecond", "ms": "millisecond",
	"microsecond": "microsecond", "microseconds": "microsecond", "us": "microsecond",
}

// normalizeUnit resolves a unit spelling to its canonical name.
func normalizeUnit(word string) (string, bool) {
	unit, ok := intervalUnits[strings.ToLower(word)]
	return unit, ok
}

// intervalTerm is one decomposed (amount, unit) pair. Amount keeps its
// textual form; negation prefixes "-".
type intervalTerm struct {
	amount string
	unit   string
}

// parseInterval parses the INTERVAL keyword form: either INTERVAL '<text>'
// with an optional unit range, or INTERVAL <expr> <unit>.
func (p *Parser) parseInterval() (expr core.Expr) {
	pos := p.token.Pos
	p.tracer.Enter("interval", pos)
	defer func() { p.tracer.Exit("interval", expr != nil) }()
	p.advance() // INTERVAL

	if p.check(token.STRING) {
		lit := p.token.Literal
		p.advance()

		spec, plainUnit := p.parseIntervalUnitSpec()
		if len(p.errors) > 0 {
			return nil
		}

		// A bare number with a single plain unit is that unit directly.
		if plainUnit != "" && isBareNumber(lit) {
			return &core.IntervalExpr{Terms: []core.IntervalTerm{
				{Amount: numberLiteral(lit), Unit: plainUnit},
			}}
		}

		terms, errMsg := decomposeInterval(lit)
		if errMsg != "" {
			p.errors = append(p.errors, &IntervalFormatError{Pos: pos, Literal: lit, Message: errMsg})
			return nil
		}
		expr := intervalExprFromTerms(terms)
		if spec != nil {
			return &core.Cast{Expr: expr, Type: spec}
		}
		return expr
	}

	// INTERVAL <expr> <unit>
	amount := p.parseExpr()
	if amount == nil {
		return nil
	}
	unit, ok := p.currentUnitWord()
	if !ok {
		p.addError("expected interval unit, got " + p.describe(p.token))
		return nil
	}
	p.advance()
	return &core.IntervalExpr{Terms: []core.IntervalTerm{{Amount: amount, Unit: unit}}}
}

// parseIntervalUnitSpec consumes an optional unit range after an interval
// string: UNIT, UNIT (n), or UNIT TO UNIT. It returns the cast type spec,
// or the bare unit name when the range was a single unparameterized unit
// (which selects the unit instead of casting).
func (p *Parser) parseIntervalUnitSpec() (*core.TypeSpec, string) {
	unit, ok := p.currentUnitWord()
	if !ok {
		return nil, ""
	}
	p.advance()

	part := core.TypePart{Name: unit}
	if p.check(token.LPAREN) {
		p.advance()
		arg := p.parseExpr()
		if arg == nil {
			return nil, ""
		}
		part.Args = append(part.Args, arg)
		if !p.expect(token.RPAREN) {
			return nil, ""
		}
	}

	if p.check(token.TO) {
		p.advance()
		trailing, ok := p.currentUnitWord()
		if !ok {
			p.addError("expected interval unit after TO, got " + p.describe(p.token))
			return nil, ""
		}
		p.advance()
		return &core.TypeSpec{Parts: []core.TypePart{part, {Name: trailing}}}, ""
	}

	if len(part.Args) == 0 {
		return nil, unit
	}
	return &core.TypeSpec{Parts: []core.TypePart{part}}, ""
}

// currentUnitWord reports whether the current token is a recognizable
// interval unit spelled as a word.
func (p *Parser) currentUnitWord() (string, bool) {
	if p.token.Quoted {
		return "", false
	}
	if !p.check(token.IDENT) && !token.IsKeyword(p.token.Type) {
		return "", false
	}
	return normalizeUnit(p.token.Literal)
}

// intervalExprFromTerms builds the parse-tree node for decomposed terms.
func intervalExprFromTerms(terms []intervalTerm) core.Expr {
	out := make([]core.IntervalTerm, len(terms))
	for i, t := range terms {
		out[i] = core.IntervalTerm{Amount: numberLiteral(t.amount), Unit: t.unit}
	}
	return &core.IntervalExpr{Terms: out}
}

// numberLiteral wraps a numeric string as a literal node.
func numberLiteral(s string) core.Expr {
	return &core.Literal{Kind: core.LiteralNumber, Value: s}
}

// isBareNumber reports whether s is nothing but an optionally signed number.
func isBareNumber(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if s[0] == '-' || s[0] == '+' {
		s = s[1:]
	}
	digits, dot := 0, 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			dot++
		default:
			return false
		}
	}
	return digits > 0 && dot <= 1
}

// decomposeInterval converts interval text into signed terms, detecting the
// notation from the text's structure. Returns an error message when no
// notation matches.
func decomposeInterval(text string) ([]intervalTerm, string) {
	s := strings.TrimSpace(text)
	if s == "" {
		return nil, "empty interval"
	}

	if s[0] == 'P' || s[0] == 'p' {
		return decomposeISO(s[1:])
	}

	return decomposeVerbose(s)
}

// decomposeISO handles ISO-8601 durations, both the designator form
// (1Y2M3DT4H5M6S, with optional per-field signs) and the alternative form
// (0001-02-03T04:05:06). The leading P has already been stripped.
func decomposeISO(s string) ([]intervalTerm, string) {
	if datePart, timePart, ok := splitISOAlternative(s); ok {
		return decomposeISOAlternative(datePart, timePart)
	}

	dateUnits := map[byte]string{'Y': "year", 'M': "month", 'W': "week", 'D': "day"}
	timeUnits := map[byte]string{'H': "hour", 'M': "minute", 'S': "second"}
	units := dateUnits

	var terms []intervalTerm
	i := 0
	for i < len(s) {
		if s[i] == 'T' || s[i] == 't' {
			units = timeUnits
			i++
			continue
		}

		start := i
		if s[i] == '-' || s[i] == '+' {
			i++
		}
		for i < len(s) && (isDigit(s[i]) || s[i] == '.') {
			i++
		}
		if i == start || i >= len(s) {
			return nil, "malformed ISO-8601 duration"
		}
		unit, ok := units[upperByte(s[i])]
		if !ok {
			return nil, "unrecognized ISO-8601 designator " + string(s[i])
		}
		amount := strings.TrimPrefix(s[start:i], "+")
		terms = append(terms, intervalTerm{amount: amount, unit: unit})
		i++
	}
	if len(terms) == 0 {
		return nil, "empty ISO-8601 duration"
	}
	return terms, ""
}

// splitISOAlternative detects the P0001-02-03T04:05:06 layout: a dashed
// date, a T separator, and a colon-delimited time.
func splitISOAlternative(s string) (string, string, bool) {
	t := strings.IndexAny(s, "Tt")
	if t < 0 {
		return "", "", false
	}
	datePart, timePart := s[:t], s[t+1:]
	if strings.Count(datePart, "-") != 2 || !strings.Contains(timePart, ":") {
		return "", "", false
	}
	return datePart, timePart, true
}

// decomposeISOAlternative maps dashed date fields to year-month-day and
// colon time fields to hour-minute-second.
func decomposeISOAlternative(datePart, timePart string) ([]intervalTerm, string) {
	dateUnits := []string{"year", "month", "day"}
	timeUnits := []string{"hour", "minute", "second"}

	var terms []intervalTerm
	for i, f := range strings.Split(datePart, "-") {
		if !isBareNumber(f) {
			return nil, "malformed date field " + f
		}
		terms = append(terms, intervalTerm{amount: f, unit: dateUnits[i]})
	}
	fields := strings.Split(timePart, ":")
	if len(fields) > 3 {
		return nil, "too many time fields"
	}
	for i, f := range fields {
		if !isBareNumber(f) {
			return nil, "malformed time field " + f
		}
		terms = append(terms, intervalTerm{amount: f, unit: timeUnits[i]})
	}
	return terms, ""
}

// decomposeVerbose handles the remaining notations, all built from
// space-separated fields: number+unit pairs, year-month dash groups,
// clock groups, the @ prefix, and the ago suffix.
func decomposeVerbose(s string) ([]intervalTerm, string) {
	fields := strings.Fields(s)

	ago := false
	if len(fields) > 0 && strings.EqualFold(fields[len(fields)-1], "ago") {
		ago = true
		fields = fields[:len(fields)-1]
	}
	if len(fields) > 0 && fields[0] == "@" {
		fields = fields[1:]
	}
	if len(fields) == 0 {
		return nil, "empty interval"
	}

	var terms []intervalTerm
	sawDateGroup := false
	for i := 0; i < len(fields); i++ {
		f := fields[i]

		switch {
		case strings.Contains(f, ":"):
			clock, errMsg := decomposeClock(f)
			if errMsg != "" {
				return nil, errMsg
			}
			terms = append(terms, clock...)

		case isDashYearMonth(f):
			ym, errMsg := decomposeDashYearMonth(f)
			if errMsg != "" {
				return nil, errMsg
			}
			terms = append(terms, ym...)
			sawDateGroup = true

		case isBareNumber(f):
			if i+1 < len(fields) {
				if unit, ok := normalizeUnit(fields[i+1]); ok {
					terms = append(terms, intervalTerm{amount: signedAmount(f), unit: unit})
					i++
					continue
				}
			}
			// Compact output form: a bare number after the year-month
			// group is the day field. A lone number defaults to seconds.
			if sawDateGroup || (i+1 < len(fields) && strings.Contains(fields[i+1], ":")) {
				terms = append(terms, intervalTerm{amount: signedAmount(f), unit: "day"})
			} else if len(fields) == 1 {
				terms = append(terms, intervalTerm{amount: signedAmount(f), unit: "second"})
			} else {
				return nil, "number " + f + " has no unit"
			}

		default:
			return nil, "unrecognized interval field " + f
		}
	}

	if ago {
		for i := range terms {
			terms[i].amount = negate(terms[i].amount)
		}
	}
	return terms, ""
}

// decomposeClock maps [-]h:m[:s] to hour/minute/second terms. The group
// sign distributes to every segment; empty leading segments are skipped.
func decomposeClock(f string) ([]intervalTerm, string) {
	neg := false
	if strings.HasPrefix(f, "-") {
		neg = true
		f = f[1:]
	} else {
		f = strings.TrimPrefix(f, "+")
	}

	segments := strings.Split(f, ":")
	if len(segments) > 3 {
		return nil, "too many clock fields in " + f
	}
	units := []string{"hour", "minute", "second"}

	var terms []intervalTerm
	for i, seg := range segments {
		if seg == "" {
			continue
		}
		if !isBareNumber(seg) {
			return nil, "malformed clock field " + seg
		}
		amount := seg
		if neg {
			amount = negate(amount)
		}
		terms = append(terms, intervalTerm{amount: amount, unit: units[i]})
	}
	if len(terms) == 0 {
		return nil, "empty clock group " + f
	}
	return terms, ""
}

// isDashYearMonth detects the [-]y-m group of the dash and compact forms.
func isDashYearMonth(f string) bool {
	body := strings.TrimPrefix(strings.TrimPrefix(f, "-"), "+")
	parts := strings.Split(body, "-")
	if len(parts) != 2 {
		return false
	}
	return isBareNumber(parts[0]) && isBareNumber(parts[1])
}

// decomposeDashYearMonth maps [-]y-m to year and month terms, the group
// sign distributing to both.
func decomposeDashYearMonth(f string) ([]intervalTerm, string) {
	neg := strings.HasPrefix(f, "-")
	body := strings.TrimPrefix(strings.TrimPrefix(f, "-"), "+")
	parts := strings.Split(body, "-")

	year, month := parts[0], parts[1]
	if neg {
		year = negate(year)
		month = negate(month)
	}
	return []intervalTerm{
		{amount: year, unit: "year"},
		{amount: month, unit: "month"},
	}, ""
}

// signedAmount strips a redundant leading plus.
func signedAmount(s string) string {
	return strings.TrimPrefix(s, "+")
}

// negate flips the sign of a numeric string.
func negate(s string) string {
	if strings.HasPrefix(s, "-") {
		return s[1:]
	}
	return "-" + strings.TrimPrefix(s, "+")
}

// upperByte uppercases one ASCII byte.
func upperByte(b byte) byte {
	if 'a' <= b && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
