package notify

import (
	"fmt"
	"strings"
	"time"

	"github.com/therapia/opinions/internal/domain/opinion"
)

const emailDate = "02/01/2006"

// daysUntil counts whole days from today to the end date, negative for
// records that have already expired.
func daysUntil(today, end time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(t).Hours() / 24)
}

func statusText(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Έληξε πριν %d ημέρες", -days)
	case days == 0:
		return "Λήγει σήμερα"
	case days == 1:
		return "Λήγει αύριο"
	}
	return fmt.Sprintf("%d ημέρες απομένουν", days)
}

// buildExpiryEmail renders the per-record notification.
func buildExpiryEmail(o *opinion.Opinion, days int) (subject, html string) {
	subject = fmt.Sprintf("Γνωμάτευση πρόκειται να λήξει: %s", o.FullName())
	html = fmt.Sprintf(`
		<h3>Γνωμάτευση πρόκειται να λήξει</h3>
		<p><strong>Ονοματεπώνυμο:</strong> %s</p>
		<p><strong>Ημερομηνία Έναρξης:</strong> %s</p>
		<p><strong>Ημερομηνία Λήξης:</strong> %s</p>
		<p><strong>Ημέρες μέχρι τη λήξη:</strong> %d</p>
		<hr>
		<p>Αυτή είναι μια αυτοματοποιημένη ειδοποίηση από το Πρόγραμμα Διαχείρισης Γνωματεύσεων.</p>`,
		o.FullName(), o.StartDate.Format(emailDate), o.EndDate.Format(emailDate), days)
	return subject, html
}

// buildSummaryEmail renders the one-shot digest of every record inside
// the expiry window.
func buildSummaryEmail(opinions []*opinion.Opinion, today time.Time, windowDays int) (subject, html string) {
	subject = fmt.Sprintf("Περίληψη: %d γνωματεύσεις που έχουν λήξει ή λήγουν σε %d ημέρες",
		len(opinions), windowDays)

	var rows strings.Builder
	for _, o := range opinions {
		rows.WriteString(fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
			</tr>`,
			o.FullName(), o.StartDate.Format(emailDate), o.EndDate.Format(emailDate),
			statusText(daysUntil(today, o.EndDate))))
	}

	html = fmt.Sprintf(`
		<h3>Γνωματεύσεις που έχουν λήξει ή λήγουν σύντομα - Περίληψη</h3>
		<p>Οι παρακάτω %d γνωματεύσεις έχουν λήξει ή λήγουν τις επόμενες %d ημέρες:</p>
		<table style="border-collapse: collapse; width: 100%%; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f8f9fa;">
					<th style="padding: 12px; border: 1px solid #ddd; text-align: left;">Ονοματεπώνυμο</th>
					<th style="padding: 12px; border: 1px solid #ddd; text-align: left;">Ημερομηνία Έναρξης</th>
					<th style="padding: 12px; border: 1px solid #ddd; text-align: left;">Ημερομηνία Λήξης</th>
					<th style="padding: 12px; border: 1px solid #ddd; text-align: left;">Κατάσταση</th>
				</tr>
			</thead>
			<tbody>%s
			</tbody>
		</table>
		<hr style="margin: 20px 0;">
		<p><em>Αυτή είναι μια αυτοματοποιημένη ειδοποίηση από το Διαχείριση Γνωματεύσεων.</em></p>`,
		len(opinions), windowDays, rows.String())
	return subject, html
}
