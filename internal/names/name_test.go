package names

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/adap-names/names/internal/errors"
)

type constructor struct {
	name string
	new  func(escaped []string, delimiter string) (Name, error)
}

var constructors = []constructor{
	{
		name: "StringArrayName",
		new: func(escaped []string, delimiter string) (Name, error) {
			n, err := NewStringArrayName(escaped, WithDelimiter(delimiter))
			if err != nil {
				return nil, err
			}
			return n, nil
		},
	},
	{
		name: "StringName",
		new: func(escaped []string, delimiter string) (Name, error) {
			n, err := NewStringName(strings.Join(escaped, delimiter), WithDelimiter(delimiter))
			if err != nil {
				return nil, err
			}
			return n, nil
		},
	},
}

func mustStringName(t *testing.T, s string, opts ...Option) *StringName {
	t.Helper()
	n, err := NewStringName(s, opts...)
	require.NoError(t, err)
	return n
}

func mustStringArrayName(t *testing.T, components []string, opts ...Option) *StringArrayName {
	t.Helper()
	n, err := NewStringArrayName(components, opts...)
	require.NoError(t, err)
	return n
}

func escapedOf(t *testing.T, n Name) []string {
	t.Helper()
	escaped := make([]string, n.NoComponents())
	for i := range escaped {
		c, err := n.Component(i)
		require.NoError(t, err)
		escaped[i] = c
	}
	return escaped
}

func assertCode(t *testing.T, code internalErrors.ErrorCode, err error) {
	t.Helper()
	if assert.Error(t, err) {
		assert.Equal(t, code, internalErrors.GetErrorCode(err), "error %v", err)
	}
}

func Test_Construction(t *testing.T) {
	t.Run("EmptyComponentList", func(t *testing.T) {
		_, err := NewStringArrayName([]string{})
		assertCode(t, internalErrors.InvalidArgument, err)
		_, err = NewStringArrayName(nil)
		assertCode(t, internalErrors.InvalidArgument, err)
	})
	t.Run("UnescapedComponent", func(t *testing.T) {
		_, err := NewStringArrayName([]string{"oss.cs"})
		assertCode(t, internalErrors.InvalidArgument, err)
		_, err = NewStringName(`oss\`)
		assertCode(t, internalErrors.InvalidArgument, err)
		_, err = NewStringName(`o\ss`)
		assertCode(t, internalErrors.InvalidArgument, err)
	})
	t.Run("MalformedDelimiter", func(t *testing.T) {
		for _, d := range []string{"", "ab", `\`, "\xff"} {
			_, err := NewStringName("oss", WithDelimiter(d))
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = NewStringArrayName([]string{"oss"}, WithDelimiter(d))
			assertCode(t, internalErrors.InvalidArgument, err)
		}
	})
	t.Run("EmptyString", func(t *testing.T) {
		n := mustStringName(t, "")
		assert.Equal(t, 1, n.NoComponents())
		assert.False(t, n.IsEmpty())
	})
	t.Run("Delimiter", func(t *testing.T) {
		assert.Equal(t, '.', mustStringName(t, "oss.cs").Delimiter())
		assert.Equal(t, '@', mustStringName(t, "oss.cs", WithDelimiter("@")).Delimiter())
		assert.Equal(t, '/', mustStringName(t, "///", WithDelimiter("/")).Delimiter())
		assert.Equal(t, '.', mustStringArrayName(t, []string{"oss", "cs"}).Delimiter())
	})
}

func Test_NoComponents(t *testing.T) {
	assert.Equal(t, 1, mustStringName(t, "oss").NoComponents())
	assert.Equal(t, 4, mustStringName(t, "oss.cs.fau.de").NoComponents())
	assert.Equal(t, 1, mustStringName(t, "oss.cs.fau.de", WithDelimiter("#")).NoComponents())
	assert.Equal(t, 4, mustStringName(t, "///", WithDelimiter("/")).NoComponents())
	assert.Equal(t, 1, mustStringName(t, `Oh\.\.\.`).NoComponents())
	assert.Equal(t, 3, mustStringArrayName(t, []string{"", "", ""}).NoComponents())
}

func Test_AsString(t *testing.T) {
	t.Run("StringArrayName", func(t *testing.T) {
		assert.Equal(t, "oss.cs.fau.de", mustStringArrayName(t, []string{"oss", "cs", "fau", "de"}).AsString())
		assert.Equal(t, "oss_cs_fau_de",
			mustStringArrayName(t, []string{"oss", "cs", "fau", "de"}, WithDelimiter("_")).AsString())
		assert.Equal(t, "oss.cs.fau.de", mustStringArrayName(t, []string{`oss\.cs`, `fau\.de`}).AsString())
		assert.Equal(t, "..", mustStringArrayName(t, []string{"", "", ""}).AsString())
		assert.Equal(t, "oss.cs.fau.de",
			mustStringArrayName(t, []string{"oss.cs.fau.de"}, WithDelimiter("#")).AsString())
	})
	t.Run("StringName", func(t *testing.T) {
		assert.Equal(t, "oss.cs.fau.de", mustStringName(t, "oss.cs.fau.de").AsString())
		assert.Equal(t, "oss_cs_fau_de", mustStringName(t, "oss_cs_fau_de", WithDelimiter("_")).AsString())
		assert.Equal(t, "oss.cs.fau.de", mustStringName(t, `oss\.cs.fau.de`).AsString())
		assert.Equal(t, "..", mustStringName(t, "..").AsString())
		assert.Equal(t, `a\\b`, mustStringName(t, `a\\b`).AsString())
	})
	t.Run("With", func(t *testing.T) {
		s, err := mustStringName(t, `oss\.cs.fau\.de`).AsStringWith("@")
		require.NoError(t, err)
		assert.Equal(t, "oss.cs@fau.de", s)

		s, err = mustStringName(t, "oss@cs.fau@de").AsStringWith("@")
		require.NoError(t, err)
		assert.Equal(t, "oss@cs@fau@de", s)

		s, err = mustStringArrayName(t, []string{"oss@cs", "fau@de"}).AsStringWith("@")
		require.NoError(t, err)
		assert.Equal(t, "oss@cs@fau@de", s)

		_, err = mustStringName(t, "oss.cs").AsStringWith("delimiter")
		assertCode(t, internalErrors.InvalidArgument, err)
	})
}

func Test_AsDataString(t *testing.T) {
	type testCase struct {
		Name Name
		Want string
	}
	for i, tc := range []testCase{
		{Name: mustStringName(t, "oss.cs.fau.de"), Want: "oss.cs.fau.de"},
		{Name: mustStringName(t, "oss_cs_fau_de", WithDelimiter("_")), Want: "oss.cs.fau.de"},
		{Name: mustStringName(t, `oss\.cs.fau\.de`), Want: `oss\.cs.fau\.de`},
		{Name: mustStringName(t, "oss.cs@fau.de", WithDelimiter("@")), Want: `oss\.cs.fau\.de`},
		{Name: mustStringName(t, ".."), Want: ".."},
		{Name: mustStringName(t, "oss.cs.fau.de", WithDelimiter("#")), Want: `oss\.cs\.fau\.de`},
		{Name: mustStringName(t, `m.y,n\,a\\m.e`, WithDelimiter(",")), Want: `m\.y.n,a\\m\.e`},
		{Name: mustStringArrayName(t, []string{"oss.cs", "fau.de"}, WithDelimiter("@")), Want: `oss\.cs.fau\.de`},
		{Name: mustStringArrayName(t, []string{"m.y", `n\,a\\m.e`}, WithDelimiter(",")), Want: `m\.y.n,a\\m\.e`},
		{Name: mustStringArrayName(t, []string{""}), Want: ""},
	} {
		assert.Equal(t, tc.Want, tc.Name.AsDataString(), "case %d", i)
	}
}

func Test_RoundTrip(t *testing.T) {
	for _, n := range []Name{
		mustStringName(t, "oss.cs.fau.de"),
		mustStringName(t, `oss\.cs.fau\.de`),
		mustStringName(t, ".."),
		mustStringName(t, ""),
		mustStringName(t, "oss.cs@fau.de", WithDelimiter("@")),
		mustStringName(t, `m.y,n\,a\\m.e`, WithDelimiter(",")),
		mustStringArrayName(t, []string{"oss.cs", "fau.de"}, WithDelimiter("@")),
		mustStringArrayName(t, []string{`a\\`, `\/`}, WithDelimiter("/")),
	} {
		parsed := mustStringName(t, n.AsDataString())
		assert.Equal(t, n.NoComponents(), parsed.NoComponents(), "components of %v", n)
		assert.Equal(t, n.AsDataString(), parsed.AsDataString())
		assert.Equal(t, DefaultDelimiter, parsed.Delimiter())
	}
}

func Test_EmptyName(t *testing.T) {
	for _, c := range constructors {
		t.Run(c.name, func(t *testing.T) {
			n, err := c.new([]string{"oss"}, ".")
			require.NoError(t, err)
			empty, err := n.Remove(0)
			require.NoError(t, err)
			assert.True(t, empty.IsEmpty())
			assert.Equal(t, "", empty.AsDataString())
			assert.Equal(t, "", empty.String())

			// The data string of a name without components parses back to one empty component.
			parsed := mustStringName(t, empty.AsDataString())
			assert.Equal(t, 1, parsed.NoComponents())
			assert.True(t, empty.IsEqual(parsed))
			assert.True(t, parsed.IsEqual(empty))
			assert.Equal(t, parsed.HashCode(), empty.HashCode())
		})
	}
}

func Test_CrossRepresentation(t *testing.T) {
	for _, tc := range []struct {
		Escaped   []string
		Delimiter string
	}{
		{Escaped: []string{"oss", "cs", "fau", "de"}, Delimiter: "."},
		{Escaped: []string{`oss\.cs`, `fau\.de`}, Delimiter: "."},
		{Escaped: []string{"m.y", `n\,a\\m.e`}, Delimiter: ","},
		{Escaped: []string{"", "", ""}, Delimiter: "/"},
	} {
		a, err := constructors[0].new(tc.Escaped, tc.Delimiter)
		require.NoError(t, err)
		s, err := constructors[1].new(tc.Escaped, tc.Delimiter)
		require.NoError(t, err)
		assert.Equal(t, a.AsString(), s.AsString())
		assert.Equal(t, a.AsDataString(), s.AsDataString())
		assert.Equal(t, a.NoComponents(), s.NoComponents())
		assert.Equal(t, a.HashCode(), s.HashCode())
		assert.Equal(t, a.String(), s.String())
		assert.True(t, a.IsEqual(s))
		assert.True(t, s.IsEqual(a))
	}
	t.Run("InvalidUTF8", func(t *testing.T) {
		for _, delimiter := range []string{".", "ä"} {
			escaped := []string{"a\xffb", "\xfe", "\\\\\xff"}
			a, err := constructors[0].new(escaped, delimiter)
			require.NoError(t, err)
			s, err := constructors[1].new(escaped, delimiter)
			require.NoError(t, err)
			assert.Equal(t, escaped, escapedOf(t, a))
			assert.Equal(t, escaped, escapedOf(t, s))
			assert.Equal(t, "a\xffb.\xfe.\\\\\xff", a.AsDataString())
			assert.Equal(t, a.AsDataString(), s.AsDataString())
			assert.Equal(t, a.AsString(), s.AsString())

			parsed := mustStringName(t, a.AsDataString())
			assert.Equal(t, escaped, escapedOf(t, parsed))
		}
	})
}

func Test_HashCode(t *testing.T) {
	t.Run("AcrossRepresentations", func(t *testing.T) {
		a := mustStringArrayName(t, []string{"oss", "cs"})
		s := mustStringName(t, "oss.cs")
		other := mustStringName(t, "oss.cs", WithDelimiter("/"))
		assert.Equal(t, a.HashCode(), s.HashCode())
		assert.NotEqual(t, s.HashCode(), other.HashCode())
	})
	t.Run("Components", func(t *testing.T) {
		n := mustStringName(t, `oss\.cs.fau\.de`)
		assert.Equal(t, n.HashCode(), mustStringArrayName(t, []string{`oss\.cs`, `fau\.de`}).HashCode())
		assert.NotEqual(t, n.HashCode(), mustStringArrayName(t, []string{"oss", "cs", `fau\.de`}).HashCode())
	})
	t.Run("Value", func(t *testing.T) {
		// "a" + "." = 97*31 + 46
		assert.Equal(t, int32(3053), mustStringName(t, "a").HashCode())
	})
}

func Test_IsEqual(t *testing.T) {
	a := mustStringArrayName(t, []string{"oss", "cs", "fau", "de"})
	s := mustStringName(t, "oss.cs.fau.de")
	slash := mustStringName(t, "oss.cs.fau.de", WithDelimiter("/"))
	assert.True(t, a.IsEqual(s))
	assert.True(t, s.IsEqual(a))
	assert.False(t, a.IsEqual(slash))
	assert.False(t, slash.IsEqual(s))
	assert.False(t, s.IsEqual(nil))

	underscore := mustStringName(t, "oss_cs_fau_de", WithDelimiter("_"))
	assert.True(t, underscore.IsEqual(mustStringArrayName(t, []string{"oss", "cs", "fau", "de"}, WithDelimiter("_"))))
	// same data string, different delimiter
	assert.Equal(t, underscore.AsDataString(), s.AsDataString())
	assert.False(t, underscore.IsEqual(s))

	n := mustStringName(t, `m.y,n\,a\\m.e`, WithDelimiter(","))
	assert.True(t, n.IsEqual(mustStringArrayName(t, []string{"m.y", `n\,a\\m.e`}, WithDelimiter(","))))
	assert.False(t, n.IsEqual(mustStringArrayName(t, []string{"m.y", `n\,am.e`}, WithDelimiter(","))))
}

func Test_Clone(t *testing.T) {
	for _, n := range []Name{
		mustStringName(t, "oss.cs.fau.de"),
		mustStringName(t, "oss_cs_fau_de", WithDelimiter("_")),
		mustStringName(t, ""),
		mustStringName(t, `m.y,n\,a\\m.e`, WithDelimiter(",")),
		mustStringArrayName(t, []string{`oss\.cs`, "fau"}),
	} {
		c := n.Clone()
		assert.True(t, c.IsEqual(n))
		assert.Equal(t, n.HashCode(), c.HashCode())
	}
	t.Run("NoSharedStorage", func(t *testing.T) {
		n := mustStringArrayName(t, []string{"oss", "cs"})
		c := n.Clone().(*StringArrayName)
		c.components[0] = "cip"
		assert.Equal(t, "oss.cs", n.AsString())
		assert.Equal(t, "cip.cs", c.AsString())
	})
}

func Test_Component(t *testing.T) {
	for _, ctor := range constructors {
		t.Run(ctor.name, func(t *testing.T) {
			n, err := ctor.new([]string{"oss", `cs\.fau`, "de"}, ".")
			require.NoError(t, err)
			c, err := n.Component(0)
			require.NoError(t, err)
			assert.Equal(t, "oss", c)
			c, err = n.Component(1)
			require.NoError(t, err)
			assert.Equal(t, `cs\.fau`, c)
			_, err = n.Component(-1)
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n.Component(3)
			assertCode(t, internalErrors.InvalidArgument, err)
		})
	}
}

func Test_SetComponent(t *testing.T) {
	for _, ctor := range constructors {
		t.Run(ctor.name, func(t *testing.T) {
			n1, err := ctor.new([]string{"oss", "cs", "fau", "de"}, ".")
			require.NoError(t, err)
			_, err = n1.SetComponent(4, "spam")
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n1.SetComponent(-1, "spam")
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n1.SetComponent(0, ".")
			assertCode(t, internalErrors.InvalidArgument, err)

			n2, err := n1.SetComponent(0, "cip")
			require.NoError(t, err)
			assert.Equal(t, "oss.cs.fau.de", n1.AsString())
			assert.Equal(t, "cip.cs.fau.de", n2.AsString())

			n2, err = n1.SetComponent(3, `org\.uk`)
			require.NoError(t, err)
			assert.Equal(t, 4, n2.NoComponents())
			assert.Equal(t, `oss.cs.fau.org\.uk`, n2.String())
		})
	}
}

func Test_Insert(t *testing.T) {
	t.Run("StringName", func(t *testing.T) {
		type testCase struct {
			Name      string
			Delimiter string
			Index     int
			Component string
			Want      string
		}
		for _, tc := range []testCase{
			{Name: "oss.fau.de", Delimiter: ".", Index: 1, Component: "cs", Want: "oss.cs.fau.de"},
			{Name: "oss.fau.de", Delimiter: "@", Index: 1, Component: "cs", Want: "oss.fau.de@cs"},
			{Name: "", Delimiter: ".", Index: 0, Component: "oss", Want: "oss."},
			{Name: "", Delimiter: ".", Index: 1, Component: "oss", Want: ".oss"},
			{Name: "oss.cs.de", Delimiter: ".", Index: 2, Component: "fau", Want: "oss.cs.fau.de"},
			{Name: "oss.cs.fau", Delimiter: ".", Index: 3, Component: "de", Want: "oss.cs.fau.de"},
		} {
			n1 := mustStringName(t, tc.Name, WithDelimiter(tc.Delimiter))
			n2, err := n1.Insert(tc.Index, tc.Component)
			require.NoError(t, err)
			assert.Equal(t, tc.Name, n1.AsString())
			assert.Equal(t, tc.Want, n2.AsString())
		}
	})
	t.Run("Preconditions", func(t *testing.T) {
		for _, ctor := range constructors {
			n, err := ctor.new([]string{"oss", "fau", "de"}, ".")
			require.NoError(t, err)
			_, err = n.Insert(-1, "oss")
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n.Insert(4, "oss")
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n.Insert(0, ".")
			assertCode(t, internalErrors.InvalidArgument, err)
		}
	})
	t.Run("Locality", func(t *testing.T) {
		for _, ctor := range constructors {
			n, err := ctor.new([]string{"oss", `c\.s`, "", "de"}, ".")
			require.NoError(t, err)
			before := escapedOf(t, n)
			for i := 0; i <= len(before); i++ {
				res, err := n.Insert(i, `x\\`)
				require.NoError(t, err)
				after := escapedOf(t, res)
				require.Len(t, after, len(before)+1)
				assert.Equal(t, `x\\`, after[i])
				for j := 0; j < i; j++ {
					assert.Equal(t, before[j], after[j])
				}
				for j := i; j < len(before); j++ {
					assert.Equal(t, before[j], after[j+1])
				}
				assert.Equal(t, before, escapedOf(t, n), "receiver changed")
			}
		}
	})
}

func Test_Append(t *testing.T) {
	for _, ctor := range constructors {
		t.Run(ctor.name, func(t *testing.T) {
			a, err := ctor.new([]string{"oss", "cs", "fau"}, ".")
			require.NoError(t, err)
			b, err := a.Append("x")
			require.NoError(t, err)
			assert.Equal(t, 3, a.NoComponents())
			assert.Equal(t, a.NoComponents()+1, b.NoComponents())
			assert.Equal(t, "oss.cs.fau", a.AsString())
			assert.Equal(t, "oss.cs.fau.x", b.AsString())

			_, err = a.Append(".")
			assertCode(t, internalErrors.InvalidArgument, err)
		})
	}
	t.Run("EmptyString", func(t *testing.T) {
		n2, err := mustStringName(t, "").Append("oss")
		require.NoError(t, err)
		assert.Equal(t, ".oss", n2.AsString())
	})
	t.Run("OtherDelimiter", func(t *testing.T) {
		n1 := mustStringName(t, "oss.cs.fau.de", WithDelimiter("#"))
		_, err := n1.Append("#")
		assertCode(t, internalErrors.InvalidArgument, err)
		n2, err := n1.Append("people")
		require.NoError(t, err)
		assert.Equal(t, "oss.cs.fau.de", n1.AsString())
		assert.Equal(t, "oss.cs.fau.de#people", n2.AsString())
	})
	t.Run("ToNoComponents", func(t *testing.T) {
		empty, err := mustStringName(t, "oss").Remove(0)
		require.NoError(t, err)
		n, err := empty.Append("oss")
		require.NoError(t, err)
		assert.Equal(t, 1, n.NoComponents())
		assert.Equal(t, "oss", n.AsDataString())
	})
}

func Test_Remove(t *testing.T) {
	t.Run("Boundaries", func(t *testing.T) {
		for _, ctor := range constructors {
			n, err := ctor.new([]string{"oss", "cs", "fau", "de"}, ".")
			require.NoError(t, err)
			_, err = n.Remove(-1)
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n.Remove(27)
			assertCode(t, internalErrors.InvalidArgument, err)
			_, err = n.Remove(4)
			assertCode(t, internalErrors.InvalidArgument, err)

			n2, err := n.Remove(0)
			require.NoError(t, err)
			assert.Equal(t, "oss.cs.fau.de", n.AsString())
			assert.Equal(t, "cs.fau.de", n2.AsString())

			n2, err = n.Remove(3)
			require.NoError(t, err)
			assert.Equal(t, "oss.cs.fau", n2.AsString())
		}
	})
	t.Run("LastComponent", func(t *testing.T) {
		n1 := mustStringName(t, "")
		assert.Equal(t, 1, n1.NoComponents())
		n2, err := n1.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, 1, n1.NoComponents())
		assert.Equal(t, 0, n2.NoComponents())
		assert.True(t, n2.IsEmpty())
		assert.Equal(t, "", n2.AsDataString())
		_, err = n2.Remove(0)
		assertCode(t, internalErrors.InvalidArgument, err)

		n3, err := mustStringArrayName(t, []string{"oss"}).Remove(0)
		require.NoError(t, err)
		assert.Equal(t, 0, n3.NoComponents())
		assert.Equal(t, "", n3.AsDataString())
	})
	t.Run("OtherDelimiter", func(t *testing.T) {
		n1 := mustStringName(t, `oss\#cs\#fau\#de#people`, WithDelimiter("#"))
		n2, err := n1.Remove(0)
		require.NoError(t, err)
		assert.Equal(t, "oss#cs#fau#de#people", n1.AsString())
		assert.Equal(t, "people", n2.AsString())
	})
}

func Test_Concat(t *testing.T) {
	type testCase struct {
		Self  Name
		Other Name
		Want  string
	}
	for i, tc := range []testCase{
		{
			Self:  mustStringName(t, "oss.cs"),
			Other: mustStringName(t, "fau.de"),
			Want:  "oss.cs.fau.de",
		},
		{
			Self:  mustStringName(t, "oss.cs"),
			Other: mustStringArrayName(t, []string{"fau", "de"}),
			Want:  "oss.cs.fau.de",
		},
		{
			Self:  mustStringName(t, "oss@cs", WithDelimiter("@")),
			Other: mustStringName(t, "fau.de"),
			Want:  "oss.cs.fau.de",
		},
		{
			Self:  mustStringName(t, `oss\@cs`, WithDelimiter("@")),
			Other: mustStringName(t, "fau@de"),
			Want:  "oss@cs.fau@de",
		},
		{
			Self:  mustStringName(t, `oss\.tf.cs`),
			Other: mustStringName(t, "fau.de"),
			Want:  `oss\.tf.cs.fau.de`,
		},
		{
			Self:  mustStringName(t, "oss/cs", WithDelimiter("/")),
			Other: mustStringName(t, `fau\/de`, WithDelimiter("/")),
			Want:  "oss.cs.fau/de",
		},
		{
			Self:  mustStringArrayName(t, []string{"oss"}, WithDelimiter("/")),
			Other: mustStringName(t, `a.b/c\/d`, WithDelimiter("/")),
			Want:  `oss.a\.b.c/d`,
		},
	} {
		before := tc.Self.AsDataString()
		res, err := tc.Self.Concat(tc.Other)
		require.NoError(t, err, "case %d", i)
		assert.Equal(t, tc.Want, res.AsDataString(), "case %d", i)
		assert.Equal(t, before, tc.Self.AsDataString(), "case %d", i)
		assert.Equal(t, tc.Self.Delimiter(), res.Delimiter(), "case %d", i)
		assert.Equal(t, tc.Self.NoComponents()+tc.Other.NoComponents(), res.NoComponents(), "case %d", i)
	}
	t.Run("Nil", func(t *testing.T) {
		_, err := mustStringName(t, "oss.cs").Concat(nil)
		assertCode(t, internalErrors.InvalidArgument, err)
		_, err = mustStringName(t, "oss.cs").Concat((*StringName)(nil))
		assertCode(t, internalErrors.InvalidArgument, err)
		_, err = mustStringArrayName(t, []string{"oss"}).Concat((*StringArrayName)(nil))
		assertCode(t, internalErrors.InvalidArgument, err)
		assert.False(t, mustStringName(t, "oss").IsEqual((*StringArrayName)(nil)))
	})
	t.Run("KeepsVariant", func(t *testing.T) {
		res, err := mustStringName(t, "a").Concat(mustStringArrayName(t, []string{"b"}))
		require.NoError(t, err)
		assert.IsType(t, &StringName{}, res)
		res, err = mustStringArrayName(t, []string{"a"}).Concat(mustStringName(t, "b"))
		require.NoError(t, err)
		assert.IsType(t, &StringArrayName{}, res)
	})
}

func Test_InvalidState(t *testing.T) {
	corrupted := map[string]variant{
		"EscapeDelimiter":      &StringName{delimiter: EscapeCharacter, name: "oss.cs", noComponents: 2},
		"CountMismatch":        &StringName{delimiter: '.', name: "oss.cs", noComponents: 3},
		"NoComponentsNotEmpty": &StringName{delimiter: '.', name: "oss", noComponents: 0},
		"DanglingEscape":       &StringArrayName{delimiter: '.', components: []string{`oss\`}},
		"InvalidRune":          &StringArrayName{delimiter: -1, components: []string{"oss"}},
	}
	for name, n := range corrupted {
		t.Run(name, func(t *testing.T) {
			_, err := n.Component(0)
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.SetComponent(0, "s")
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.Insert(0, "s")
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.Append("s")
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.Remove(0)
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.Concat(mustStringArrayName(t, []string{""}))
			assertCode(t, internalErrors.InvalidState, err)
			_, err = n.AsStringWith("/")
			assertCode(t, internalErrors.InvalidState, err)
			for _, f := range []func(){
				func() { n.AsString() },
				func() { n.AsDataString() },
				func() { _ = n.String() },
				func() { n.HashCode() },
				func() { n.Clone() },
				func() { n.IsEmpty() },
				func() { n.NoComponents() },
				func() { n.IsEqual(mustStringName(t, "oss")) },
			} {
				assert.Panics(t, f)
			}
		})
	}
}

func Test_checkRestUntouched(t *testing.T) {
	before := []string{"a", "b", "c"}
	t.Run("Set", func(t *testing.T) {
		assert.NoError(t, checkRestUntouched(before, []string{"a", "x", "c"}, 1, 0))
		assertCode(t, internalErrors.MethodFailed, checkRestUntouched(before, []string{"a", "x", "c"}, 0, 0))
	})
	t.Run("Insert", func(t *testing.T) {
		assert.NoError(t, checkRestUntouched(before, []string{"a", "x", "b", "c"}, 1, 1))
		assert.NoError(t, checkRestUntouched(before, []string{"a", "b", "c", "x"}, 3, 1))
		assertCode(t, internalErrors.MethodFailed, checkRestUntouched(before, []string{"a", "x", "c", "b"}, 1, 1))
	})
	t.Run("Remove", func(t *testing.T) {
		assert.NoError(t, checkRestUntouched(before, []string{"a", "c"}, 1, -1))
		assertCode(t, internalErrors.MethodFailed, checkRestUntouched(before, []string{"a", "b"}, 1, -1))
	})
	t.Run("Count", func(t *testing.T) {
		assertCode(t, internalErrors.MethodFailed, checkRestUntouched(before, before, 1, 1))
	})
}
