// Package route declares objectives, sentinel values and errors, and
// tunable options for single-source path computation over a core.Graph.
package route

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Sentinel errors for routing requests.
var (
	// ErrNilGraph is returned if a nil graph pointer is passed.
	ErrNilGraph = errors.New("route: graph is nil")

	// ErrEmptySource is returned when no source node ID was provided.
	ErrEmptySource = errors.New("route: source node ID is empty")

	// ErrUnknownNode is returned when a request names a node absent from
	// the graph's declared node set.
	ErrUnknownNode = errors.New("route: node not found")

	// ErrNoTarget is returned by Result.Path when the request carried no
	// target node.
	ErrNoTarget = errors.New("route: no target set")

	// ErrBadObjective is returned for an objective value outside the
	// declared enum.
	ErrBadObjective = errors.New("route: unknown objective")
)

// Sentinel values left in a Result for nodes the traversal never reached.
const (
	// Unreached marks a hop count or cumulative cost of a node with no
	// path from the source.
	Unreached = -1

	// UnboundedBandwidth is the bottleneck-bandwidth value of the source
	// itself and of unreached nodes. The two cases are deliberately not
	// distinguished by the bandwidth field alone; cross-check the hop
	// count, or use Result.Reached.
	UnboundedBandwidth = 999
)

// Objective selects what a routing request optimizes along each path.
type Objective int

const (
	// MinHops minimizes the number of edges between source and node.
	MinHops Objective = iota

	// MinCost minimizes the cumulative edge value along the path.
	MinCost

	// MaxBandwidth maximizes the bottleneck: the smallest edge value on
	// the chosen path is as large as possible ("widest path").
	MaxBandwidth
)

// String returns the canonical text form: "min-hops", "min-cost",
// or "max-bandwidth".
func (o Objective) String() string {
	switch o {
	case MinHops:
		return "min-hops"
	case MinCost:
		return "min-cost"
	case MaxBandwidth:
		return "max-bandwidth"
	default:
		return fmt.Sprintf("objective(%d)", int(o))
	}
}

// ParseObjective converts the canonical text form back to an Objective.
func ParseObjective(s string) (Objective, error) {
	switch s {
	case "min-hops":
		return MinHops, nil
	case "min-cost":
		return MinCost, nil
	case "max-bandwidth":
		return MaxBandwidth, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadObjective, s)
	}
}

// MarshalText implements encoding.TextMarshaler so objectives bind
// directly into YAML documents and CLI flags.
func (o Objective) MarshalText() ([]byte, error) {
	if o < MinHops || o > MaxBandwidth {
		return nil, fmt.Errorf("%w: %d", ErrBadObjective, int(o))
	}

	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Objective) UnmarshalText(text []byte) error {
	parsed, err := ParseObjective(string(text))
	if err != nil {
		return err
	}
	*o = parsed

	return nil
}

// Options holds the parameters of one routing request.
//
// Source    – ID of the root node all paths are computed from (required).
// Target    – optional node ID used as the default for Result.Path.
// Objective – what to optimize; MinHops if unset.
// Logger    – receives Debug-level traversal events; discarded if unset.
type Options struct {
	Source    string
	Target    string
	Objective Objective
	Logger    *slog.Logger
}

// Option represents a functional option for configuring Route.
type Option func(*Options)

// Source sets the root node the request routes from.
// Must be provided on every request.
func Source(id string) Option {
	return func(o *Options) { o.Source = id }
}

// Target sets the default destination used by Result.Path.
// Any other node remains queryable through Result.PathTo.
func Target(id string) Option {
	return func(o *Options) { o.Target = id }
}

// WithObjective selects the optimization objective for this request.
func WithObjective(obj Objective) Option {
	return func(o *Options) { o.Objective = obj }
}

// WithLogger routes traversal events to l instead of discarding them.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults for the given source node ID:
//   - Objective: MinHops.
//   - Target:    none.
//   - Logger:    slog discard.
func DefaultOptions(source string) Options {
	return Options{
		Source:    source,
		Objective: MinHops,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}
