// Package graph: JSON persistence.
//
// Wire shape: exactly two fields. "nodes" maps raw id to node payload;
// "links" lists {"between":[min,max],"value":...} records sorted by key.
// Adjacency sets are derived state and are never written; decoding rebuilds
// them from the link keys alone and resumes the id generator at one past the
// largest id appearing anywhere in the document.

package graph

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/veltran/plexus/ids"
)

const (
	fieldNodes = "nodes"
	fieldLinks = "links"
)

// linkRecord is the wire form of one link entry. Between is always written
// as (min, max) under the id ordering, so symmetric keys encode identically.
type linkRecord[N, L any] struct {
	Between [2]ids.ID[N] `json:"between"`
	Value   L            `json:"value"`
}

// MarshalJSON encodes the graph in the wire shape above. Node keys follow
// the stdlib's deterministic map-key ordering and link records are sorted by
// (min, max), so equal graphs produce byte-identical encodings.
// Complexity: O(V + E log E)
func (g *Graph[N, L]) MarshalJSON() ([]byte, error) {
	nodes := make(map[ids.ID[N]]N, len(g.nodes))
	for id, n := range g.nodes {
		nodes[id] = n.value
	}

	records := make([]linkRecord[N, L], 0, len(g.links))
	for _, key := range g.LinkKeys() {
		records = append(records, linkRecord[N, L]{
			Between: key.Array(),
			Value:   *g.links[key],
		})
	}

	return json.Marshal(struct {
		Nodes map[ids.ID[N]]N    `json:"nodes"`
		Links []linkRecord[N, L] `json:"links"`
	}{Nodes: nodes, Links: records})
}

// UnmarshalJSON decodes the wire shape above into a fresh store and replaces
// the receiver's contents only on full success — no partial graph survives a
// failure.
//
// The top-level object is walked strictly: both fields are required, a
// repeated or unrecognized field is rejected, and so are duplicate or
// self-referential link keys. A link whose key mentions an id absent from
// the node map is accepted as-is; no cross-validation happens at this layer.
// Each present node's adjacency set is reconstructed as the set of partner
// ids over all link keys containing it.
// Complexity: O(V + E)
func (g *Graph[N, L]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	if err := expectDelim(dec, '{'); err != nil {
		return err
	}

	var (
		rawNodes map[ids.ID[N]]N
		rawLinks []linkRecord[N, L]
		seen     = map[string]bool{}
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("graph: decode: %w", err)
		}
		field, ok := tok.(string)
		if !ok {
			return fmt.Errorf("graph: decode: unexpected token %v", tok)
		}
		if seen[field] {
			return fmt.Errorf("%w: %q", ErrDuplicateField, field)
		}
		seen[field] = true

		switch field {
		case fieldNodes:
			err = dec.Decode(&rawNodes)
		case fieldLinks:
			err = dec.Decode(&rawLinks)
		default:
			return fmt.Errorf("%w: %q", ErrUnknownField, field)
		}
		if err != nil {
			return fmt.Errorf("graph: decode: field %q: %w", field, err)
		}
	}
	if err := expectDelim(dec, '}'); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("graph: decode: trailing data after object")
	}
	if !seen[fieldNodes] {
		return fmt.Errorf("%w: %q", ErrMissingField, fieldNodes)
	}
	if !seen[fieldLinks] {
		return fmt.Errorf("%w: %q", ErrMissingField, fieldLinks)
	}

	// Rebuild the store. The resume point must clear every id seen in either
	// collection so freshly minted ids never collide with persisted ones.
	var next uint64
	bump := func(id ids.ID[N]) {
		if id.Raw()+1 > next {
			next = id.Raw() + 1
		}
	}

	nodes := make(map[ids.ID[N]]*node[N], len(rawNodes))
	for id, value := range rawNodes {
		nodes[id] = &node[N]{value: value, neighbors: make(map[ids.ID[N]]struct{})}
		bump(id)
	}

	links := make(map[Pair[N]]*L, len(rawLinks))
	for _, rec := range rawLinks {
		a, b := rec.Between[0], rec.Between[1]
		if a == b {
			return fmt.Errorf("%w: %v", ErrSelfLink, a)
		}
		key := PairOf(a, b)
		if _, dup := links[key]; dup {
			return fmt.Errorf("%w: %v", ErrDuplicateLink, key)
		}
		value := rec.Value
		links[key] = &value
		bump(a)
		bump(b)

		// Derive adjacency for whichever endpoints exist as nodes.
		if n, ok := nodes[a]; ok {
			n.neighbors[b] = struct{}{}
		}
		if n, ok := nodes[b]; ok {
			n.neighbors[a] = struct{}{}
		}
	}

	g.ctx = ids.ContextAt[N](next)
	g.nodes = nodes
	g.links = links

	return nil
}

// expectDelim consumes one token and verifies it is the given delimiter.
func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("graph: decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("graph: decode: expected %q, found %v", want.String(), tok)
	}

	return nil
}
