package rlp

// Decode strictly decodes a single top-level RLP value from data. It
// is an error for data to contain any bytes beyond the one value
// (TrailingBytesError).
func Decode(data []byte) (Value, error) {
	val, n, err := decodeItem(data)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, &TrailingBytesError{Decoded: n, Total: len(data)}
	}
	return val, nil
}

// decodeItem decodes a single value starting at data[0] and reports
// how many bytes it consumed. It does not require data to be fully
// consumed; callers decoding list payloads rely on that.
func decodeItem(data []byte) (Value, int, error) {
	if len(data) == 0 {
		return nil, 0, ErrEmptyInput
	}

	b0 := data[0]
	switch {
	case b0 < shortStringOffset:
		return String{b0}, 1, nil

	case b0 <= shortStringOffset+maxShortLen:
		length := int(b0 - shortStringOffset)
		total := 1 + length
		if total > len(data) {
			return nil, 0, &InsufficientDataError{Expected: total, Actual: len(data)}
		}
		return String(cloneBytes(data[1:total])), total, nil

	case b0 < shortListOffset:
		length, lenOfLen, err := decodeLongLength(data, shortStringOffset, longStringOffset)
		if err != nil {
			return nil, 0, err
		}
		total := 1 + lenOfLen + length
		if total > len(data) {
			return nil, 0, &InsufficientDataError{Expected: total, Actual: len(data)}
		}
		start := 1 + lenOfLen
		return String(cloneBytes(data[start:total])), total, nil

	case b0 <= shortListOffset+maxShortLen:
		length := int(b0 - shortListOffset)
		total := 1 + length
		if total > len(data) {
			return nil, 0, &InsufficientDataError{Expected: total, Actual: len(data)}
		}
		items, err := decodeItems(data[1:total])
		if err != nil {
			return nil, 0, err
		}
		return List(items), total, nil

	default:
		length, lenOfLen, err := decodeLongLength(data, shortListOffset, longListOffset)
		if err != nil {
			return nil, 0, err
		}
		total := 1 + lenOfLen + length
		if total > len(data) {
			return nil, 0, &InsufficientDataError{Expected: total, Actual: len(data)}
		}
		start := 1 + lenOfLen
		items, err := decodeItems(data[start:total])
		if err != nil {
			return nil, 0, err
		}
		return List(items), total, nil
	}
}

// decodeItems decodes a list payload into its items, erroring if an
// item's declared length would run past the end of the payload.
func decodeItems(payload []byte) ([]Value, error) {
	items := make([]Value, 0)
	for len(payload) > 0 {
		val, n, err := decodeItem(payload)
		if err != nil {
			return nil, err
		}
		items = append(items, val)
		payload = payload[n:]
	}
	return items, nil
}

// decodeLongLength reads the length-of-length byte and the
// big-endian length field for a long-form string or list prefix
// (data[0] is the prefix byte; longBase is subtracted from it to get
// the length-of-length; shortBase is not used). A length of 55 or
// less is rejected, since it should have used the short form.
func decodeLongLength(data []byte, shortBase, longBase int) (length int, lenOfLen int, err error) {
	lenOfLen = int(data[0]) - longBase
	if 1+lenOfLen > len(data) {
		return 0, 0, &InsufficientDataError{Expected: 1 + lenOfLen, Actual: len(data)}
	}

	lenBytes := data[1 : 1+lenOfLen]
	if lenBytes[0] == 0 {
		return 0, 0, ErrInvalidLengthEncoding
	}

	if lenOfLen > 8 {
		return 0, 0, ErrLengthTooLarge
	}

	var n uint64
	for _, b := range lenBytes {
		n = n<<8 | uint64(b)
	}
	if n > uint64(^uint(0)>>1) {
		return 0, 0, ErrLengthTooLarge
	}
	length = int(n)

	if length <= maxShortLen {
		return 0, 0, ErrInvalidLengthEncoding
	}

	return length, lenOfLen, nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
