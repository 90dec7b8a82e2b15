package argate

import (
	"errors"
	"sync"
	"testing"

	"github.com/npillmayer/arabicfix/arfix"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type GateTestEnviron struct {
	suite.Suite
	state *State
	gate  *Gate
}

// listen for 'go test' command --> run test methods
func TestGateFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabicfix.gate")
	defer teardown()
	suite.Run(t, new(GateTestEnviron))
}

// run once, before test suite methods
func (env *GateTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("arabicfix.gate").SetTraceLevel(tracing.LevelInfo)
}

// run before each test method
func (env *GateTestEnviron) SetupTest() {
	env.state = NewState(arfix.DefaultOptions())
	env.gate = NewGate(env.state, NewPlatformSet("bedrock_steve"))
}

// run once, after test suite methods
func (env *GateTestEnviron) TearDownSuite() {
	env.T().Log("Tearing down test suite")
}

var (
	alice   = Player{Name: "alice"}
	bypass  = Player{Name: "bob", Permissions: []string{PermBypass}}
	bedrock = Player{Name: "bedrock_steve"}
)

const mixed = "مرحبا hello"

// --- Tests -----------------------------------------------------------------

func (env *GateTestEnviron) TestLatinOnlyPassesWithDefaults() {
	out, d := env.gate.Process(alice, "hello")
	env.Equal("hello", out)
	env.Equal(PassNoArabic, d)
}

func (env *GateTestEnviron) TestArabicIsFixed() {
	out, d := env.gate.Process(alice, mixed)
	env.Equal(Transformed, d)
	env.Equal(arfix.Fix(mixed, arfix.DefaultOptions()), out)
}

func (env *GateTestEnviron) TestLatinIsFixedWhenNotArabicOnly() {
	env.state.SetOptions(arfix.Options{ConvertDigits: true, WrapWithDirectionMarks: true})
	out, d := env.gate.Process(alice, "abc123")
	env.Equal(Transformed, d)
	env.Equal("\u200F\u0663\u0662\u0661cba\u061C\u200F", out)
}

func (env *GateTestEnviron) TestBypassAlwaysWins() {
	for _, opts := range []arfix.Options{
		arfix.DefaultOptions(),
		{},
		{ConvertDigits: true, PlatformFilter: true},
	} {
		env.state.SetOptions(opts)
		for _, msg := range []string{"hello", mixed, "١٢٣ 123"} {
			out, d := env.gate.Process(bypass, msg)
			env.Equal(msg, out)
			env.Equal(PassBypass, d)
		}
	}
}

func (env *GateTestEnviron) TestToggleDisablesEverything() {
	env.False(env.state.Toggle())
	out, d := env.gate.Process(alice, mixed)
	env.Equal(mixed, out)
	env.Equal(PassDisabled, d)
	env.True(env.state.Toggle())
	_, d = env.gate.Process(alice, mixed)
	env.Equal(Transformed, d)
}

func (env *GateTestEnviron) TestSetOptionsKeepsEnableSwitch() {
	env.state.SetEnabled(false)
	env.state.SetOptions(arfix.Options{})
	env.False(env.state.Load().Enabled)
	env.Equal(arfix.Options{}, env.state.Load().Options)
}

func (env *GateTestEnviron) TestPlatformFilter() {
	opts := arfix.DefaultOptions()
	opts.PlatformFilter = true
	env.state.SetOptions(opts)
	_, d := env.gate.Process(alice, mixed)
	env.Equal(PassPlatform, d)
	_, d = env.gate.Process(bedrock, mixed)
	env.Equal(Transformed, d)
	_, d = env.gate.Process(bedrock, "hello")
	env.Equal(PassNoArabic, d, "platform check comes before the Arabic check")
}

func (env *GateTestEnviron) TestPlatformLookupFailsOpen() {
	opts := arfix.DefaultOptions()
	opts.PlatformFilter = true
	env.state.SetOptions(opts)
	failing := NewGate(env.state, ClassifierFunc(func(string) (bool, error) {
		return true, ErrPlatformUnavailable
	}))
	out, d := failing.Process(bedrock, mixed)
	env.Equal(mixed, out)
	env.Equal(PassPlatform, d)
	panicking := NewGate(env.state, ClassifierFunc(func(string) (bool, error) {
		panic(errors.New("integration not loaded"))
	}))
	env.NotPanics(func() { out, d = panicking.Process(bedrock, mixed) })
	env.Equal(mixed, out)
	env.Equal(PassPlatform, d)
}

func (env *GateTestEnviron) TestClassifierNotAskedWithoutFilter() {
	asked := false
	g := NewGate(env.state, ClassifierFunc(func(string) (bool, error) {
		asked = true
		return false, nil
	}))
	_, d := g.Process(alice, mixed)
	env.Equal(Transformed, d)
	env.False(asked)
}

func (env *GateTestEnviron) TestNilSenderAndNilClassifier() {
	g := NewGate(env.state, nil)
	out, d := g.Process(nil, mixed)
	env.Equal(Transformed, d)
	env.NotEqual(mixed, out)
}

func (env *GateTestEnviron) TestDecisionNames() {
	env.Equal("pass:bypass", PassBypass.String())
	env.Equal("transformed", Transformed.String())
	env.Equal("<invalid>", Decision(42).String())
}

// --- Concurrency -----------------------------------------------------------

func TestStateConcurrentAccess(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "arabicfix.gate")
	defer teardown()
	tracing.Select("arabicfix.gate").SetTraceLevel(tracing.LevelError)
	//
	state := NewState(arfix.DefaultOptions())
	gate := NewGate(state, nil)
	a := arfix.DefaultOptions()
	b := arfix.Options{ConvertDigits: true}
	const toggles = 1000 // even, so the switch ends up where it started
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for i := 0; i < toggles; i++ {
			state.Toggle()
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			if i%2 == 0 {
				state.SetOptions(a)
			} else {
				state.SetOptions(b)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 2000; i++ {
			snap := state.Load()
			if snap.Options != a && snap.Options != b {
				t.Errorf("observed torn options %v", snap.Options)
				return
			}
			gate.Process(alice, mixed)
		}
	}()
	wg.Wait()
	if !state.Load().Enabled {
		t.Errorf("expected enable switch to be on after an even number of toggles")
	}
	if state.Load().Options != b {
		t.Errorf("expected last options set to win, have %v", state.Load().Options)
	}
}
