package shapesig

import (
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// Kind distinguishes the two variants of a Signature.
type Kind int

//go:generate go tool enumer -type=Kind -trimprefix=Kind -transform=snake -output=gen_kind_enumer.go signature.go

const (
	// KindSingle is a signature holding exactly one ShapeDType.
	KindSingle Kind = iota

	// KindTuple is a signature holding an ordered tuple of ShapeDTypes,
	// of length 0 or >= 2: length-1 tuples collapse to KindSingle on
	// construction.
	KindTuple
)

// Signature describes the static structure of one or more array-like values:
// either a single ShapeDType or a flat, ordered tuple of them.
//
// Tuples never nest. Construction collapses length-1 tuples to the single
// variant, so a Signature holding exactly one descriptor is always
// KindSingle.
type Signature struct {
	kind  Kind
	items []ShapeDType
}

// Single returns the signature of one descriptor.
func Single(sd ShapeDType) Signature {
	return Signature{kind: KindSingle, items: []ShapeDType{sd}}
}

// Tuple returns the tuple signature of the given descriptors, in order.
// A single descriptor collapses to Single; no descriptors yield the empty
// tuple.
func Tuple(sds ...ShapeDType) Signature {
	if len(sds) == 1 {
		return Single(sds[0])
	}
	items := make([]ShapeDType, len(sds))
	copy(items, sds)
	return Signature{kind: KindTuple, items: items}
}

// Kind returns the variant of the signature.
func (sig Signature) Kind() Kind {
	return sig.kind
}

// IsSingle reports whether the signature holds exactly one descriptor.
func (sig Signature) IsSingle() bool {
	return sig.kind == KindSingle
}

// IsTuple reports whether the signature is a tuple.
func (sig Signature) IsTuple() bool {
	return sig.kind == KindTuple
}

// Len returns the number of descriptors: 1 for a single, the tuple length
// otherwise.
func (sig Signature) Len() int {
	return len(sig.items)
}

// At returns the i-th descriptor. For a single signature only At(0) is valid.
func (sig Signature) At(i int) ShapeDType {
	return sig.items[i]
}

// Items returns a copy of the descriptors, in order. A single signature
// yields a one-element slice.
func (sig Signature) Items() []ShapeDType {
	items := make([]ShapeDType, len(sig.items))
	copy(items, sig.items)
	return items
}

// Equal reports whether both signatures have the same variant and equal
// descriptors in the same order.
func (sig Signature) Equal(other Signature) bool {
	if sig.kind != other.kind || len(sig.items) != len(other.items) {
		return false
	}
	for i, sd := range sig.items {
		if !sd.Equal(other.items[i]) {
			return false
		}
	}
	return true
}

// String implements fmt.Stringer. A single signature renders as its
// descriptor; a tuple as the parenthesized list of its descriptors.
func (sig Signature) String() string {
	if sig.kind == KindSingle {
		return sig.items[0].String()
	}
	var b strings.Builder
	b.WriteByte('(')
	for i, sd := range sig.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(sd.String())
	}
	b.WriteByte(')')
	return b.String()
}

// SignatureOf extracts the Signature of obj.
//
// It is permissive with respect to its input: obj may be any value
// implementing Shaped (including a ShapeDType, which describes itself), an
// already extracted Signature, or a slice or array of such values, nested to
// any depth. It is strict with respect to its output: always a flat
// Signature, with a sequence of exactly one descriptor collapsed to the
// single variant at every nesting level.
func SignatureOf(obj any) (Signature, error) {
	switch v := obj.(type) {
	case Shaped:
		return Single(FromShaped(v)), nil
	case Signature:
		// Re-extracting an already extracted signature is the identity.
		return v, nil
	}
	rv := reflect.ValueOf(obj)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return Signature{}, errors.Errorf("cannot extract a signature from %T: it does not implement shapesig.Shaped and is not a slice of such values", obj)
	}
	var items []ShapeDType
	for i := 0; i < rv.Len(); i++ {
		elem, err := SignatureOf(rv.Index(i).Interface())
		if err != nil {
			return Signature{}, errors.WithMessagef(err, "element %d", i)
		}
		items = append(items, elem.items...)
	}
	return Tuple(items...), nil
}

// Splice combines any number of signatures into one, flattening the top
// level: each tuple signature contributes all of its descriptors, each single
// signature contributes its one descriptor, in argument order. Empty tuples
// contribute nothing.
//
// The result follows the usual normalization: exactly one descriptor overall
// collapses to a single signature, anything else is a tuple. For instance:
//
//	Splice(Single(sd1), Tuple(sd2, sd3, sd4), Tuple(), Single(sd5)) == Tuple(sd1, sd2, sd3, sd4, sd5)
func Splice(sigs ...Signature) Signature {
	total := 0
	for _, sig := range sigs {
		total += len(sig.items)
	}
	items := make([]ShapeDType, 0, total)
	for _, sig := range sigs {
		items = append(items, sig.items...)
	}
	return Tuple(items...)
}
