package arfix

import (
	"fmt"
	"io"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
	"golang.org/x/text/transform"
)

// --- Test Suite Preparation ------------------------------------------------

type FixTestEnviron struct {
	suite.Suite
}

// listen for 'go test' command --> run test methods
func TestFixFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabicfix.fix")
	defer teardown()
	suite.Run(t, new(FixTestEnviron))
}

// run once, before test suite methods
func (env *FixTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arabicfix.fix").SetTraceLevel(tracing.LevelInfo)
}

// run once, after test suite methods
func (env *FixTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

const (
	alm = string(ALM)
	rlm = string(RLM)
)

var samples = []string{
	"",
	"hello",
	"مرحبا hello",
	"abc123",
	"زر موقعنا https://example.com/a_b?x=1 الآن",
	"@user_1 قال: #tag +49-30",
	"😀 emoji مع رموز 𝔸𝔹",
	"نص عربي فقط",
	"a",
	"تم ٣ مرات",
}

// --- Tests -----------------------------------------------------------------

func (env *FixTestEnviron) TestMapDigits() {
	env.Equal("\u0660\u0661\u0662\u0663\u0664\u0665\u0666\u0667\u0668\u0669", MapDigits("0123456789"))
	env.Equal("abc\u0661\u0662\u0663", MapDigits("abc123"))
	env.Equal("no digits", MapDigits("no digits"))
	for _, s := range samples {
		in, out := []rune(s), []rune(MapDigits(s))
		env.Require().Equal(len(in), len(out), "digit mapping must preserve length of %q", s)
		for i := range in {
			if in[i] >= '0' && in[i] <= '9' {
				env.Equal(EasternDigitZero+in[i]-'0', out[i], "position %d of %q", i, s)
			} else {
				env.Equal(in[i], out[i], "position %d of %q", i, s)
			}
		}
	}
}

func (env *FixTestEnviron) TestIsolateLTRRuns() {
	env.Equal(alm+"hello", IsolateLTRRuns("hello"))
	env.Equal("مرحبا "+alm+"hello", IsolateLTRRuns("مرحبا hello"))
	env.Equal("نص", IsolateLTRRuns("نص"))
	env.Equal(alm+"a "+alm+"b", IsolateLTRRuns("a b"))
	env.Equal("قال "+alm+"@user_1: "+alm+"http://x.y/z", IsolateLTRRuns("قال @user_1: http://x.y/z"),
		"handles and URLs are single runs; a space ends a run")
	env.Equal(alm+"abc\u0661\u0662\u0663", IsolateLTRRuns("abc\u0661\u0662\u0663"), "Eastern digits are not part of a run")
	for _, s := range samples {
		isolated := IsolateLTRRuns(s)
		env.Equal(s, strings.ReplaceAll(isolated, alm, ""), "ALMs must be pure insertions")
		runs := LTRRuns(s)
		env.Equal(utf8.RuneCountInString(s)+len(runs), utf8.RuneCountInString(isolated))
	}
}

func (env *FixTestEnviron) TestLTRRunsAreMaximal() {
	s := "ab سلام 12:30 و x"
	runs := LTRRuns(s)
	env.Require().Len(runs, 3)
	texts := make([]string, len(runs))
	for i, r := range runs {
		texts[i] = s[r.Start:r.End]
	}
	env.Equal([]string{"ab", "12:30", "x"}, texts)
	for i := 1; i < len(runs); i++ {
		env.Less(runs[i-1].End, runs[i].Start, "runs must neither overlap nor touch")
	}
	env.Empty(LTRRuns(""))
	env.Empty(LTRRuns("سلام"))
}

func (env *FixTestEnviron) TestReverseCodepoints() {
	env.Equal("olleh", ReverseCodepoints("hello"))
	env.Equal("ابحرم", ReverseCodepoints("مرحبا"))
	env.Equal("𝔹𝔸", ReverseCodepoints("𝔸𝔹"), "4-byte code-points must stay intact")
	for _, s := range samples {
		r := ReverseCodepoints(s)
		env.True(utf8.ValidString(r))
		env.Equal(s, ReverseCodepoints(r), "reversal must be self-inverse for %q", s)
	}
}

func (env *FixTestEnviron) TestReverseSeparatesCombiningMarks() {
	// 'e' + COMBINING ACUTE ACCENT: the mark ends up in front of its base
	env.Equal("\u0301e", ReverseCodepoints("e\u0301"))
}

func (env *FixTestEnviron) TestWrapDirection() {
	env.Equal(rlm+"t"+rlm, WrapDirection("t"))
	twice := WrapDirection(WrapDirection("t"))
	env.Equal(4, strings.Count(twice, rlm), "wrapping is not idempotent")
	env.Equal("t", StripMarks(twice))
}

func (env *FixTestEnviron) TestMalformedInputPassesThrough() {
	bad := "ab\xffسلام\xfe"
	var out string
	env.NotPanics(func() { out = Fix(bad, DefaultOptions()) })
	env.Equal(2, strings.Count(out, "\xff")+strings.Count(out, "\xfe"))
	env.Equal(len(bad)+len(alm)+2*len(rlm), len(out))
}

func (env *FixTestEnviron) TestFixMixedText() {
	got := Fix("مرحبा hello", DefaultOptions())
	want := []rune(rlm + ReverseCodepoints("مرحبا "+alm+"hello") + rlm)
	env.Equal(want, []rune(got))
	env.Equal(rlm+"olleh"+alm+" ابحرم"+rlm, got)
}

func (env *FixTestEnviron) TestFixWithDigitConversion() {
	opts := Options{ConvertDigits: true, WrapWithDirectionMarks: true}
	got := Fix("abc123", opts)
	env.Equal(rlm+"\u0663\u0662\u0661cba"+alm+rlm, got)
	env.Equal(1, strings.Count(got, alm), "converted digits must not start a run of their own")
}

func (env *FixTestEnviron) TestFixWithoutWrap() {
	got := Fix("مرحبا hello", Options{})
	env.Equal("olleh"+alm+" ابحرم", got)
	env.False(strings.Contains(got, rlm))
}

func (env *FixTestEnviron) TestTransformerMatchesFix() {
	opts := DefaultOptions()
	long := strings.Repeat("سلام hello 123 ", 50)
	for _, s := range append(samples, long) {
		out, n, err := transform.String(NewTransformer(opts), s)
		env.Require().NoError(err)
		env.Equal(len(s), n)
		env.Equal(Fix(s, opts), out)
	}
	r := transform.NewReader(strings.NewReader("مرحبا hello"), NewTransformer(opts))
	b, err := io.ReadAll(r)
	env.Require().NoError(err)
	env.Equal(Fix("مرحبا hello", opts), string(b))
}

// --- Examples --------------------------------------------------------------

func ExampleFix() {
	out := Fix("مرحبا hello", Options{})
	fmt.Printf("%+q\n", out)
	// Output:
	// "olleh\u061c \u0627\u0628\u062d\u0631\u0645"
}

func ExampleLTRRuns() {
	s := "راسلني على @ali_99 أو ali.com"
	for _, run := range LTRRuns(s) {
		fmt.Println(s[run.Start:run.End])
	}
	// Output:
	// @ali_99
	// ali.com
}
