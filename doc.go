// Package longid generates unique, time-ordered 64-bit integer IDs
// suitable as database primary keys across independent servers.
//
// # Format
//
// An ID packs three fields most-significant-first:
//
//	[44 bits ms_timestamp][8 bits sequence][12 bits server ID]
//
// so id = (millis << 20) | (sequence << 12) | serverID. The timestamp
// is milliseconds since the Unix epoch (valid through roughly year
// 2557), the sequence disambiguates IDs created within the same
// millisecond, and the server ID (0-4095) makes IDs from distinct
// servers unique without any coordination between them. All three
// fields can be recovered from any ID with the Extract functions.
//
// # Monotonicity and throughput
//
// A Generator issues numerically non-decreasing IDs as long as the
// system clock does not move backwards. Each instance can issue up to
// 256 IDs per millisecond; when the sequence is exhausted before the
// clock advances, NextID sleeps for a millisecond and retries, so a
// call is delayed but never fails.
//
// # Usage
//
//	gen, err := longid.NewGenerator(123) // IDs carry server ID 123
//	id := gen.NextID()
//
//	t, err := longid.ExtractTime(id)
//	server, err := longid.ExtractServerID(id)
//
// Uniqueness within one server requires all its callers to share one
// Generator instance; two instances constructed with the same server
// ID can issue duplicate IDs within the same millisecond.
package longid
