package cover

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/topoglue/topoglue/bump"
	"github.com/topoglue/topoglue/space"
)

// Descriptor is the serializable form of a covering: the parameters
// needed to rebuild every member through a factory. Weight functions
// are never persisted — they are pure values of (center, radius) under
// a given factory, so the descriptor plus the original space,
// assignment and factory reconstruct the covering exactly.
type Descriptor struct {
	// Space is an informational label of the carrier the covering was
	// built over. Reconstruct does not interpret it.
	Space string `yaml:"space,omitempty"`

	Members []MemberRecord `yaml:"members"`
}

// MemberRecord captures one member: center coordinates, support radius,
// plateau radius and an opaque neighborhood reference for the consumer's
// own bookkeeping.
type MemberRecord struct {
	Center       []float64 `yaml:"center"`
	Radius       float64   `yaml:"radius"`
	Plateau      float64   `yaml:"plateau"`
	Neighborhood string    `yaml:"neighborhood,omitempty"`
}

// Descriptor extracts the serializable form of the covering. label
// names the carrier; ref, when non-nil, supplies the per-member
// neighborhood reference.
//
// Complexity: O(n).
func (c *Covering[P]) Descriptor(label string, ref func(i int) string) Descriptor {
	d := Descriptor{Space: label, Members: make([]MemberRecord, len(c.members))}
	for i := range c.members {
		rec := MemberRecord{
			Center:  c.sp.Coords(c.members[i].Center),
			Radius:  c.members[i].Radius,
			Plateau: c.members[i].Plateau,
		}
		if ref != nil {
			rec.Neighborhood = ref(i)
		}
		d.Members[i] = rec
	}

	return d
}

// EncodeDescriptor writes d as YAML.
func EncodeDescriptor(w io.Writer, d Descriptor) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("cover: encode descriptor: %w", err)
	}

	return enc.Close()
}

// DecodeDescriptor reads a YAML descriptor.
func DecodeDescriptor(r io.Reader) (Descriptor, error) {
	var d Descriptor
	if err := yaml.NewDecoder(r).Decode(&d); err != nil {
		return Descriptor{}, fmt.Errorf("cover: decode descriptor: %w", err)
	}

	return d, nil
}

// Reconstruct rebuilds a covering from its descriptor under the
// original carrier, assignment and factory. Every member is re-made
// through f and restricted to its recorded radius; a record the factory
// cannot reproduce — wrong coordinate arity, non-positive radius, or a
// radius beyond what the assignment's clearance admits — fails with
// ErrBadDescriptor (wrapped with the offending member index).
//
// Complexity: O(n) factory calls.
func Reconstruct[P comparable](
	sp space.Space[P],
	dom space.Subset[P],
	d Descriptor,
	u Assignment[P],
	f bump.Factory[P],
) (*Covering[P], error) {
	if sp == nil {
		return nil, ErrNilSpace
	}
	if u == nil {
		return nil, ErrNilAssignment
	}
	if f == nil {
		return nil, ErrNilFactory
	}

	members := make([]bump.Member[P], 0, len(d.Members))
	for i, rec := range d.Members {
		if rec.Radius <= 0 {
			return nil, fmt.Errorf("cover: member %d: %w", i, ErrBadDescriptor)
		}
		center, err := sp.PointAt(rec.Center)
		if err != nil {
			return nil, fmt.Errorf("cover: member %d: %w", i, ErrBadDescriptor)
		}
		m, err := f.Make(center, u(center))
		if err != nil {
			return nil, fmt.Errorf("cover: member %d: %w", i, ErrBadDescriptor)
		}
		if rec.Radius < m.Radius {
			if m, err = f.RestrictRadius(m, rec.Radius); err != nil {
				return nil, fmt.Errorf("cover: member %d: %w", i, ErrBadDescriptor)
			}
		} else if rec.Radius > m.Radius {
			return nil, fmt.Errorf("cover: member %d: %w", i, ErrBadDescriptor)
		}
		members = append(members, m)
	}

	return FromMembers(sp, dom, members)
}
