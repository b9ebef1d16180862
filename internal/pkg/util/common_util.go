package util

import "strconv"

// StrSliceToUInt64Slice 将字符串切片解析为 uint64 切片
func StrSliceToUInt64Slice(strs []string) ([]uint64, error) {
	result := make([]uint64, 0, len(strs))
	for _, s := range strs {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

// PtrInt 用于将 int 转换为 *int
func PtrInt(i int) *int {
	return &i
}

// PtrUint64 用于将 uint64 转换为 *uint64
func PtrUint64(i uint64) *uint64 {
	return &i
}
