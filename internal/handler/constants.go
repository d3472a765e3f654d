package handler

import "time"

// TimeFormat is the timestamp format used in API responses (RFC3339).
// The Telegram moderation message uses its own human-readable format,
// see notifier.FormatProposal.
const TimeFormat = time.RFC3339
