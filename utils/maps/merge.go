package maps

import "encoding/json"

func toMap(v interface{}) (map[string]interface{}, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]interface{}
	if err = json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}

func copyMap(m map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(m))
	for k, v := range m {
		if inner, ok := v.(map[string]interface{}); ok {
			v = copyMap(inner)
		}
		out[k] = v
	}
	return out
}

// merge writes every key of src into dst. Objects present on both sides are
// merged recursively; anything else in src replaces dst.
func merge(dst, src map[string]interface{}) map[string]interface{} {
	for k, v := range src {
		srcInner, srcIsMap := v.(map[string]interface{})
		dstInner, dstIsMap := dst[k].(map[string]interface{})
		if srcIsMap && dstIsMap {
			dst[k] = merge(dstInner, srcInner)
			continue
		}
		dst[k] = v
	}
	return dst
}
