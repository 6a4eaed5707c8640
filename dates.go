package spacetraveling

import (
	"fmt"
	"time"
)

// ptMonths are lower-cased Brazilian Portuguese month abbreviations.
var ptMonths = [...]string{
	"jan", "fev", "mar", "abr", "mai", "jun",
	"jul", "ago", "set", "out", "nov", "dez",
}

// cmsTimeLayout is the timestamp variant the CMS emits when the offset
// has no colon, e.g. "2021-04-23T00:00:00+0000".
const cmsTimeLayout = "2006-01-02T15:04:05-0700"

// FormatDate converts a CMS timestamp into the display form "02 mon 2006"
// with a lower-cased pt-BR month abbreviation, e.g. "23 abr 2021".
// Empty or unparseable input yields "".
func FormatDate(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		t, err = time.Parse(cmsTimeLayout, ts)
		if err != nil {
			return ""
		}
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), ptMonths[t.Month()-1], t.Year())
}
