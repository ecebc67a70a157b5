package loramint

type ConditionFunc func(map[string]any) map[string]any

// QueryResult is a window of stored records together with the total number of matching records.
type QueryResult[T any] struct {
	Data       []T
	Count      int
	Limit      int
	Offset     int
	TotalCount int64
}

func WithOffset(offset int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["offset"] = offset
		return m
	}
}

func WithLimit(limit int) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["limit"] = limit
		return m
	}
}

func WithDeviceEUI(deviceEUI string) ConditionFunc {
	return func(m map[string]any) map[string]any {
		m["device_eui"] = deviceEUI
		return m
	}
}

func WithPagination(p Pagination) []ConditionFunc {
	return []ConditionFunc{WithOffset(p.Offset), WithLimit(p.PerPage)}
}

func WithParams(query map[string][]string, p Pagination) []ConditionFunc {
	conditions := WithPagination(p)

	if deviceEUI, ok := query["device_eui"]; ok && len(deviceEUI) > 0 && deviceEUI[0] != "" {
		conditions = append(conditions, WithDeviceEUI(deviceEUI[0]))
	}

	return conditions
}
