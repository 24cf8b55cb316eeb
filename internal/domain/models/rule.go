package models

type RuleKind string

const (
	KindText  RuleKind = "text"
	KindImage RuleKind = "image"
)

func ParseRuleKind(s string) (RuleKind, bool) {
	switch RuleKind(s) {
	case KindText, KindImage:
		return RuleKind(s), true
	default:
		return "", false
	}
}

type MatchMode string

const (
	MatchFull  MatchMode = "full"
	MatchStart MatchMode = "start"
	MatchEnd   MatchMode = "end"
	MatchAny   MatchMode = "any"
)

func ParseMatchMode(s string) (MatchMode, bool) {
	switch MatchMode(s) {
	case MatchFull, MatchStart, MatchEnd, MatchAny:
		return MatchMode(s), true
	default:
		return "", false
	}
}

// Rule - реакция бота: набор триггеров и ответов.
// Sensitive и Counter - указатели, потому что отсутствие значения отличается от нулевого.
type Rule struct {
	Kind      RuleKind
	Match     MatchMode
	Sensitive *bool
	Triggers  []string
	Responses []string
	Users     []int64
	Channels  []int64
	Counter   *int64
}

func (r *Rule) CaseSensitive() bool {
	return r.Sensitive != nil && *r.Sensitive
}

func (r *Rule) Exhausted() bool {
	return r.Counter != nil && *r.Counter <= 0
}

func (r *Rule) Clone() *Rule {
	clone := &Rule{
		Kind:      r.Kind,
		Match:     r.Match,
		Triggers:  cloneSlice(r.Triggers),
		Responses: cloneSlice(r.Responses),
		Users:     cloneSlice(r.Users),
		Channels:  cloneSlice(r.Channels),
	}

	if r.Sensitive != nil {
		sensitive := *r.Sensitive
		clone.Sensitive = &sensitive
	}

	if r.Counter != nil {
		counter := *r.Counter
		clone.Counter = &counter
	}

	return clone
}

type NamedRule struct {
	Name string
	Rule *Rule
}

// PartialRule - результат разбора тела команды. nil означает, что поле не указано.
// Для Users и Channels пустой, но не nil срез означает явный сброс ограничения.
type PartialRule struct {
	Kind      *RuleKind
	Match     *MatchMode
	Sensitive *bool
	Triggers  []string
	Responses []string
	Users     []int64
	Channels  []int64
	Counter   *int64
}

func (p *PartialRule) IsEmpty() bool {
	return p.Kind == nil && p.Match == nil && p.Sensitive == nil &&
		p.Triggers == nil && p.Responses == nil &&
		p.Users == nil && p.Channels == nil && p.Counter == nil
}

func cloneSlice[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}

	out := make([]T, len(s))
	copy(out, s)

	return out
}
