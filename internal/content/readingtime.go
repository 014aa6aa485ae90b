package content

import (
	"fmt"
	"math"
	"time"
)

// EstimateReadingTime converts a word count into a reading time at wpm words
// per minute. The display text rounds minutes to two decimals and then up to
// the next whole minute.
func EstimateReadingTime(words, wpm int) ReadingTime {
	if wpm <= 0 {
		wpm = defaultWordsPerMinute
	}
	if words < 0 {
		words = 0
	}
	minutes := float64(words) / float64(wpm)
	rounded := math.Round(minutes*100) / 100
	return ReadingTime{
		Words:    words,
		Minutes:  minutes,
		Duration: time.Duration(minutes * float64(time.Minute)),
		Text:     fmt.Sprintf("%d min read", int(math.Ceil(rounded))),
	}
}
