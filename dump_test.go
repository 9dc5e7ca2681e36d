package gs11n

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkVisitsEveryTopLevelFieldInOrder(t *testing.T) {
	in := &fixtureFlat{Name: "walked", Count: 5}
	data := Marshal(in)

	var seen []uint64
	err := Walk(data, visitorFunc(func(fieldID uint64, wt WireType, raw []byte) error {
		seen = append(seen, fieldID)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []uint64{fixtureFlatFieldName, fixtureFlatFieldCount}, seen)
}

func TestWalkCanRecurseIntoNestedMessageBytes(t *testing.T) {
	in := &fixtureNested{ID: 1, Child: &fixtureFlat{Name: "nested", Count: 2}}
	data := Marshal(in)

	var childFields []uint64
	err := Walk(data, visitorFunc(func(fieldID uint64, wt WireType, raw []byte) error {
		if fieldID == fixtureNestedFieldChild {
			// raw is the full LengthDelimited span, length prefix included;
			// strip it before recursing into the nested message's own
			// field stream.
			sub := NewReader(raw)
			body := sub.Read(sub.readVarint())
			return Walk(body, visitorFunc(func(innerID uint64, innerWT WireType, innerRaw []byte) error {
				childFields = append(childFields, innerID)
				return nil
			}))
		}
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []uint64{fixtureFlatFieldName, fixtureFlatFieldCount}, childFields)
}

func TestDumpRendersFieldIDWireTypeAndLength(t *testing.T) {
	in := &fixtureFlat{Name: "abc", Count: 1}
	data := Marshal(in)

	out, err := Dump(data)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "#1"))
	assert.True(t, strings.Contains(out, "#2"))
}

type visitorFunc func(fieldID uint64, wt WireType, raw []byte) error

func (f visitorFunc) VisitField(fieldID uint64, wt WireType, raw []byte) error {
	return f(fieldID, wt, raw)
}
