package dom

// DefaultMaxDepth is the nesting limit for elements if option MaxDepth is
// not given.
const DefaultMaxDepth = 512

// Option configures the parser.
type Option func(*config)

type config struct {
	maxDepth       int
	rejectTrailing bool
	matchCloseTags bool
	skipComments   bool
}

func newConfig(opts []Option) config {
	cfg := config{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// MaxDepth limits how deeply elements may be nested. The root element is at
// depth 1. A limit of 0 lifts the restriction altogether; negative values are
// ignored.
func MaxDepth(depth int) Option {
	return func(cfg *config) {
		if depth >= 0 {
			cfg.maxDepth = depth
		}
	}
}

// RejectTrailing makes any non-whitespace content after the root element an
// error (ErrTrailingContent). Without it, trailing content is ignored.
func RejectTrailing() Option {
	return func(cfg *config) {
		cfg.rejectTrailing = true
	}
}

// MatchCloseTags makes a close tag whose name differs from its open tag an
// error (ErrTagMismatch). Without it, close tag names are not checked.
func MatchCloseTags() Option {
	return func(cfg *config) {
		cfg.matchCloseTags = true
	}
}

// SkipComments accepts <!-- … --> comments wherever an element child may
// appear. Comments do not produce nodes. Without this option a comment is a
// syntax error.
func SkipComments() Option {
	return func(cfg *config) {
		cfg.skipComments = true
	}
}

// Strict combines RejectTrailing and MatchCloseTags.
func Strict() Option {
	return func(cfg *config) {
		cfg.rejectTrailing = true
		cfg.matchCloseTags = true
	}
}
