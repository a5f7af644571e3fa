// Ad Break Injector: overlays CUE-OUT / CUE-OUT-CONT / CUE-IN markers onto
// an already-windowed or already-fitted segment sequence, without touching
// segment timing or discontinuity bookkeeping.
package hls

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const adBoundaryEpsilon = 0.001

type adBreak struct {
	start    float64
	duration float64
}

// ParseAdConfig parses the `ad` query parameter grammar:
//
//	interval,<duration_s>,<interval_s>
//	ts,<duration_s>,<HH:MM:SS>[,<HH:MM:SS>...]
func ParseAdConfig(s string) (*AdConfig, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 3 {
		return nil, &AdConfigError{Msg: "expected at least 3 comma-separated fields"}
	}

	duration, err := strconv.ParseFloat(parts[1], 64)
	if err != nil || duration <= 0 {
		return nil, &AdConfigError{Msg: "duration must be a positive number"}
	}

	switch parts[0] {
	case "interval":
		interval, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || interval <= 0 {
			return nil, &AdConfigError{Msg: "interval must be a positive number"}
		}
		return &AdConfig{Mode: AdModeInterval, Duration: duration, Interval: interval}, nil
	case "ts":
		timestamps := make([]float64, 0, len(parts)-2)
		for _, raw := range parts[2:] {
			secs, err := parseClockTime(raw)
			if err != nil {
				return nil, &AdConfigError{Msg: fmt.Sprintf("malformed timestamp %q: %v", raw, err)}
			}
			timestamps = append(timestamps, secs)
		}
		if len(timestamps) == 0 {
			return nil, &AdConfigError{Msg: "timestamp mode requires at least one timestamp"}
		}
		sort.Float64s(timestamps)
		return &AdConfig{Mode: AdModeTimestamp, Duration: duration, Timestamps: timestamps}, nil
	default:
		return nil, &AdConfigError{Msg: "unknown ad mode " + parts[0]}
	}
}

func parseClockTime(s string) (float64, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 3 {
		return 0, fmt.Errorf("expected HH:MM:SS")
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, err
	}
	m, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, err
	}
	sec, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return 0, err
	}
	return float64(h)*3600 + float64(m)*60 + sec, nil
}

// breaksInSpan collects the ad breaks (in absolute playback-time seconds)
// that intersect [spanStart, spanEnd).
func breaksInSpan(cfg *AdConfig, spanStart, spanEnd float64) []adBreak {
	var breaks []adBreak
	switch cfg.Mode {
	case AdModeInterval:
		for start := cfg.Interval; start < spanEnd; start += cfg.Interval {
			if start+cfg.Duration > spanStart {
				breaks = append(breaks, adBreak{start: start, duration: cfg.Duration})
			}
		}
	case AdModeTimestamp:
		for _, start := range cfg.Timestamps {
			if start < spanEnd && start+cfg.Duration > spanStart {
				breaks = append(breaks, adBreak{start: start, duration: cfg.Duration})
			}
		}
	}
	return breaks
}

// InjectAds overlays ad-break cue tags onto segs (already windowed or
// VOD-fitted) in place. startOffset is the absolute playback time, in the
// source timeline, of the first segment. A config whose breaks never
// intersect the segments' span leaves every tag list unchanged.
func InjectAds(segs []*Segment, startOffset float64, cfg *AdConfig) {
	if cfg == nil || len(segs) == 0 {
		return
	}

	var span float64
	for _, s := range segs {
		span += s.Duration
	}
	breaks := breaksInSpan(cfg, startOffset, startOffset+span)
	if len(breaks) == 0 {
		return
	}

	currentTime := startOffset
	prevInAd := false

	for _, seg := range segs {
		segStart := currentTime
		br, ok := findBreak(breaks, segStart)

		switch {
		case ok:
			elapsed := segStart - br.start
			if elapsed < adBoundaryEpsilon {
				seg.PrependTag(NewTag(TagCueOut, formatSeconds(br.duration)))
			} else {
				seg.PrependTag(NewTag(TagCueOutCont, fmt.Sprintf("%.1f/%s", elapsed, formatSeconds(br.duration))))
			}
			prevInAd = true
		case prevInAd:
			seg.PrependTag(NewTag(TagCueIn, ""))
			prevInAd = false
		}

		currentTime += seg.Duration
	}
}

// findBreak returns the first break whose interval contains segStart,
// honoring the epsilon tolerance for boundary robustness. Overlapping
// breaks are a misconfiguration; the first match wins.
func findBreak(breaks []adBreak, segStart float64) (adBreak, bool) {
	for _, b := range breaks {
		if segStart >= b.start-adBoundaryEpsilon && segStart < b.start+b.duration {
			return b, true
		}
	}
	return adBreak{}, false
}
