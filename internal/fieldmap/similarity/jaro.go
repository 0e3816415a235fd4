package similarity

// Jaro returns the classic Jaro similarity of a and b.
// Match window: max(len)/2 - 1, never negative.
func Jaro(a, b string) float64 {
	// greedy matching is order-sensitive; fix the order so the score is symmetric
	if a > b {
		a, b = b, a
	}
	ra := []rune(a)
	rb := []rune(b)
	al, bl := len(ra), len(rb)

	if al == 0 && bl == 0 {
		return 1
	}
	if al == 0 || bl == 0 {
		return 0
	}

	window := al
	if bl > window {
		window = bl
	}
	window = window/2 - 1
	if window < 0 {
		window = 0
	}

	ma := make([]bool, al)
	mb := make([]bool, bl)
	matches := 0

	for i := 0; i < al; i++ {
		start := i - window
		if start < 0 {
			start = 0
		}
		end := i + window + 1
		if end > bl {
			end = bl
		}
		for j := start; j < end; j++ {
			if mb[j] || ra[i] != rb[j] {
				continue
			}
			ma[i], mb[j] = true, true
			matches++
			break
		}
	}
	if matches == 0 {
		return 0
	}

	// транспозиции: совпавшие символы в разном порядке
	transpositions := 0
	k := 0
	for i := 0; i < al; i++ {
		if !ma[i] {
			continue
		}
		for !mb[k] {
			k++
		}
		if ra[i] != rb[k] {
			transpositions++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(al) + m/float64(bl) + (m-float64(transpositions)/2)/m) / 3
}
