package referral

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/therapia/opinions/pkg/therapy"
)

// documentDate is the date layout used inside referral documents. Single
// digit days and months appear in the wild, so the layout is unpadded.
const documentDate = "2/1/2006"

// identityPattern captures the examinee block:
// Α.Μ.Κ.Α. Εξεταζόμενου   NUMBER : : FULLNAME Ονομ/μο Εξεταζόμενου
var identityPattern = regexp.MustCompile(`(?i)Α\.Μ\.Κ\.Α\.\s+Εξεταζόμενου\s+(\d+)\s*:\s*:\s*([^\n]+?)\s+Ονομ/μο\s+Εξεταζόμενου`)

// sessionLabels are the therapy headings that precede an approved total.
var sessionLabels = []string{
	"ΕΙΔΙΚΗ ΑΓΩΓΗ/ΦΥΣΙΚΟΘΕΡΑΠΕΙΑ",
	"ΛΟΓΟΘΕΡΑΠΕΙΑ",
	"ΕΡΓΟΘΕΡΑΠΕΙΑ",
	"ΘΕΡΑΠΕΙΑ ΣΥΜΠΕΡΙΦΟΡΑΣ",
}

var sessionPatterns = buildSessionPatterns()

func buildSessionPatterns() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(sessionLabels))
	for _, label := range sessionLabels {
		out[label] = regexp.MustCompile(
			"(?i)" + regexp.QuoteMeta(label) + `[\s\S]{0,200}?Συνολική\s+Ποσότητα\s+Είδους:\s+(\d+)`)
	}
	return out
}

// referralPattern captures one referral line:
// "3 με διάρκεια ισχύος από 01/01/2024 έως 31/01/2024"
var referralPattern = regexp.MustCompile(`(\d+)\s+με\s+διάρκεια\s+ισχύος\s+από\s+([\d/]+)\s+έως\s+([\d/]+)`)

// therapyNamePattern matches the therapy headings referral lines attach to.
// More specific alternatives come first.
var therapyNamePattern = regexp.MustCompile(`(?i)(ΕΙΔΙΚΗ\s+ΑΓΩΓΗ/ΦΥΣΙΚΟΘΕΡΑΠΕΙΑ[^/]*|ΑΓΩΓΗ\s+ΛΟΓΟΥ\s*-\s*ΛΟΓΟΘΕΡΑΠΕΙΑ|ΛΟΓΟΘΕΡΑΠΕΙΑ|ΕΡΓΟΘΕΡΑΠΕΙΑ|ΘΕΡΑΠΕΙΑ\s+ΣΥΜΠΕΡΙΦΟΡΑΣ)`)

// Parse pulls the examinee identity, the approved session totals and the
// referral lines out of a document's plain text.
func Parse(text string) *Extraction {
	out := &Extraction{
		Sessions:  []SessionCount{},
		Referrals: []Referral{},
	}

	if m := identityPattern.FindStringSubmatch(text); m != nil {
		out.Identity = &Identity{
			AMKA: strings.TrimSpace(m[1]),
			Name: strings.TrimSpace(m[2]),
		}
	}

	for _, label := range sessionLabels {
		for _, m := range sessionPatterns[label].FindAllStringSubmatch(text, -1) {
			count, err := strconv.Atoi(m[1])
			if err != nil || count == 0 {
				continue
			}
			out.Sessions = append(out.Sessions, SessionCount{
				Therapy: therapy.Normalize(label),
				Count:   count,
			})
		}
	}

	out.Referrals = parseReferralLines(text)
	return out
}

type textItem struct {
	position int
	// exactly one of the two is set
	referral *pendingReferral
	therapy  therapy.Type
}

type pendingReferral struct {
	number int
	from   string
	to     string
}

// parseReferralLines walks referral lines and therapy headings in document
// order. Every referral line binds to the first therapy heading that
// follows it; lines with no heading after them are discarded.
func parseReferralLines(text string) []Referral {
	var items []textItem

	for _, m := range referralPattern.FindAllStringSubmatchIndex(text, -1) {
		number, err := strconv.Atoi(text[m[2]:m[3]])
		if err != nil {
			continue
		}
		items = append(items, textItem{
			position: m[0],
			referral: &pendingReferral{
				number: number,
				from:   text[m[4]:m[5]],
				to:     text[m[6]:m[7]],
			},
		})
	}

	for _, m := range therapyNamePattern.FindAllStringSubmatchIndex(text, -1) {
		items = append(items, textItem{
			position: m[0],
			therapy:  therapy.Normalize(text[m[2]:m[3]]),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].position < items[j].position
	})

	var out []Referral
	var pending []*pendingReferral
	for _, item := range items {
		if item.referral != nil {
			pending = append(pending, item.referral)
			continue
		}
		for _, p := range pending {
			start, err := time.Parse(documentDate, p.from)
			if err != nil {
				continue
			}
			end, err := time.Parse(documentDate, p.to)
			if err != nil {
				continue
			}
			out = append(out, Referral{
				Number:  p.number,
				Therapy: item.therapy,
				Start:   start,
				End:     end,
			})
		}
		pending = pending[:0]
	}
	return out
}
