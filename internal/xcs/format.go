package xcs

import (
	"fmt"
	"strconv"
	"strings"
)

// composeCond renders a condition in its printable interval form: if
// every bound is 0 or 1, per-dimension '0'/'1'/'#'; else per-dimension
// '[lo..hi]' (or '[lo]' when lo==hi) with both numbers truncated to 5
// characters.
func composeCond(c Condition) string {
	l := c.Dim()

	binary := true
	for i := 0; i < 2*l; i++ {
		if c[i] != 0 && c[i] != 1 {
			binary = false
			break
		}
	}

	var b strings.Builder
	for i := 0; i < l; i++ {
		lo, hi := c[2*i], c[2*i+1]
		if binary {
			switch {
			case lo == hi:
				b.WriteString(strconv.Itoa(int(lo)))
			default:
				b.WriteByte('#')
			}
			continue
		}
		loStr := truncate5(lo)
		hiStr := truncate5(hi)
		if loStr == hiStr {
			b.WriteString("[" + loStr + "]")
		} else {
			b.WriteString("[" + loStr + ".." + hiStr + "]")
		}
	}
	return b.String()
}

// truncate5 formats v and truncates (not rounds) to at most 5 characters,
// matching the reference's std::string::resize(5) on a default
// std::to_string formatting.
func truncate5(v float64) string {
	s := strconv.FormatFloat(v, 'f', 6, 64)
	if len(s) > 5 {
		s = s[:5]
	}
	return s
}

// String renders the classifier text form:
// cond;act;prediction(3dp);fitness(3dp);prediction_error(3dp);numerosity;experience
func (cl *Classifier) String() string {
	return fmt.Sprintf("%s;%d;%.3f;%.3f;%.3f;%d;%d",
		composeCond(cl.Rule.Condition),
		cl.Rule.Action,
		cl.Prediction,
		cl.Fitness,
		cl.PredictionError,
		cl.Numerosity,
		cl.Experience,
	)
}
