package speech

import "unicode/utf8"

// DefaultChunkSize stays under Polly's 3000 character request limit.
const DefaultChunkSize = 2500

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?' || b == '\n'
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// SplitText partitions text into contiguous chunks of at most size bytes.
// Joining the chunks yields the original text exactly. Cuts prefer a sentence end,
// then whitespace, and never land inside a UTF-8 sequence. Each cut leaves a
// remainder that still fits in the fewest chunks possible, so ASCII text always
// yields ceil(len/size) chunks.
func SplitText(text string, size int) []string {
	if size <= 0 {
		size = DefaultChunkSize
	}

	var chunks []string
	for len(text) > size {
		cut := splitPoint(text, size, minCut(len(text), size))
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	if len(text) > 0 {
		chunks = append(chunks, text)
	}
	return chunks
}

// minCut is the shortest cut after which the remaining n-cut bytes still fit in
// one chunk fewer than n needs. It is never below half a chunk.
func minCut(n int, size int) int {
	remaining := (n+size-1)/size - 1
	floor := n - remaining*size
	if floor < size/2 {
		floor = size / 2
	}
	return floor
}

func splitPoint(text string, size int, floor int) int {
	for p := size; p >= floor && p > 0; p-- {
		if isSentenceEnd(text[p-1]) && isSpace(text[p]) {
			return p
		}
	}

	for p := size - 1; p >= floor-1 && p >= 0; p-- {
		if isSpace(text[p]) {
			return p + 1
		}
	}

	p := size
	for p > 0 && !utf8.RuneStart(text[p]) {
		p--
	}
	if p == 0 {
		return size
	}
	return p
}
