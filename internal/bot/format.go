package bot

// MessageLimit is Discord's hard per-message character limit.
const MessageLimit = 2000

// ChunkMessage splits a reply into fixed-width chunks of at most max
// characters. No word-boundary splitting; concatenating the chunks yields the
// original string. Counting is rune-based because Discord's limit is on
// characters, not bytes.
func ChunkMessage(s string, max int) []string {
	if max <= 0 {
		return nil
	}
	runes := []rune(s)
	if len(runes) <= max {
		return []string{s}
	}

	chunks := make([]string, 0, (len(runes)+max-1)/max)
	for len(runes) > 0 {
		n := max
		if len(runes) < n {
			n = len(runes)
		}
		chunks = append(chunks, string(runes[:n]))
		runes = runes[n:]
	}
	return chunks
}
