package arfix

import "fmt"

// Options collects the four switches of the chat fix. Options are values;
// clients replace them as a whole and never modify a shared instance.
//
// Only ConvertDigits and WrapWithDirectionMarks influence [Fix]. The other two
// are evaluated by the policy gate before Fix is called.
type Options struct {
	ApplyOnlyIfArabic      bool // leave messages without Arabic script alone
	WrapWithDirectionMarks bool // surround the result with RLM
	ConvertDigits          bool // use Eastern Arabic-Indic digits
	PlatformFilter         bool // fix messages of alternate-client senders only
}

// DefaultOptions returns the options used when no configuration says otherwise.
func DefaultOptions() Options {
	return Options{
		ApplyOnlyIfArabic:      true,
		WrapWithDirectionMarks: true,
	}
}

func (o Options) String() string {
	return fmt.Sprintf("[only-arabic=%v wrap=%v digits=%v platform=%v]",
		o.ApplyOnlyIfArabic, o.WrapWithDirectionMarks, o.ConvertDigits, o.PlatformFilter)
}
