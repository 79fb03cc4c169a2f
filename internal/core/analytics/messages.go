package analytics

import (
	"fmt"

	"github.com/danielv14/skymning/internal/core/domain"
)

// messageCandidates holds the canned insight texts, one list per
// (trend, level) pair. Selection must stay deterministic per calendar day,
// so there is no randomness here: an explicit hash over the scaled average,
// the entry count and the day of year picks the index.
var messageCandidates = map[string][]string{
	"improving_high": {
		"You've been on a real upswing lately, and your mood is sitting at a great level. Whatever you're doing, it's working.",
		"Things keep getting better. Your recent days have been among your best in this stretch.",
		"Strong days, and trending up on top of it. Worth noting what this period has in common.",
	},
	"improving_medium": {
		"Your mood has been climbing. You're in a middling stretch overall, but the direction is encouraging.",
		"Recent days look noticeably better than the ones before them. Keep an eye on what changed.",
		"A clear lift compared to earlier in this window. The average is still moderate, but it's moving the right way.",
	},
	"improving_low": {
		"It's been a rough stretch, but the last few days are better than the ones before. That's a real shift.",
		"Things have been heavy overall, yet your recent entries point upward. Small improvements count.",
		"Your mood is climbing out of a low period. Be patient with yourself while it does.",
	},
	"declining_high": {
		"You're still in a good place overall, but the last few days dipped compared to earlier. Might be worth a slower day.",
		"A strong stretch with a recent downturn. Nothing alarming, just a pattern to notice.",
		"Your average is high, though the trend has softened lately. Check in with what's been different.",
	},
	"declining_medium": {
		"Your recent days have been tougher than the ones before. A little extra rest might help.",
		"The trend has been sliding this window. Consider what's been weighing on the last few days.",
		"A moderate stretch that's been losing ground lately. Worth pausing on what changed.",
	},
	"declining_low": {
		"This has been a hard stretch, and the recent days have been the hardest. Be gentle with yourself.",
		"Your mood has been low and trending lower. If this keeps up, consider reaching out to someone you trust.",
		"A difficult window that's still sinking. Small routines - sleep, a walk, a call - can be a foothold.",
	},
	"stable_high": {
		"Steady and high. This is the kind of stretch worth remembering when things get bumpy.",
		"Your mood has held at a strong level throughout this window. Consistency like this is rare.",
		"A calm, good period. Whatever your routine looks like right now, it suits you.",
	},
	"stable_medium": {
		"An even, middle-of-the-road stretch. Nothing dramatic either way.",
		"Your mood has been holding steady around the middle. Stability itself is worth something.",
		"A level period. If you want to nudge the average up, one small change is easier to track than many.",
	},
	"stable_low": {
		"Your mood has been consistently low this window. Steadiness makes it easier to miss - check in with yourself.",
		"A flat, heavy stretch. It may help to name one thing each day that went okay.",
		"Things have been uniformly tough lately. Consider whether something in the background needs attention.",
	},
}

// fluctuatingNotes is appended when the window's spread crosses the
// stability threshold, chosen by its own hash so it rotates independently of
// the main message.
var fluctuatingNotes = []string{
	"Your days have also varied a lot - big swings between highs and lows.",
	"There's been quite a spread between your best and worst days lately.",
	"Day-to-day your mood has been jumping around more than usual.",
}

func renderMessage(trend domain.Trend, level domain.MoodLevel, stability domain.Stability, avg float64, entryCount, dayOfYear int) string {
	candidates := messageCandidates[fmt.Sprintf("%s_%s", trend, level)]
	if len(candidates) == 0 {
		// Every (trend, level) pair is covered above; this only guards a
		// future edit that drops a key.
		return ""
	}

	msg := candidates[(int(avg*10)+entryCount+dayOfYear)%len(candidates)]

	if stability == domain.StabilityFluctuating {
		msg += " " + fluctuatingNotes[(entryCount*3+dayOfYear*2)%len(fluctuatingNotes)]
	}
	return msg
}
