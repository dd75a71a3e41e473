package odoo

import "time"

// Coerciones defensivas para los valores sin tipar que devuelve XML-RPC.
// Odoo es poco uniforme: los campos ausentes llegan como false, los enteros
// como int o int64 según el decoder, y las fechas como string o time.Time.
// Ningún helper falla; un valor con forma inesperada degrada al cero.

// Int intenta leer v como entero.
func Int(v interface{}) (int, bool) {
	switch value := v.(type) {
	case int:
		return value, true
	case int32:
		return int(value), true
	case int64:
		return int(value), true
	case float64:
		return int(value), true
	default:
		return 0, false
	}
}

// Float intenta leer v como número; ausente o malformado vale 0.
func Float(v interface{}) float64 {
	switch value := v.(type) {
	case float64:
		return value
	case float32:
		return float64(value)
	case int:
		return float64(value)
	case int64:
		return float64(value)
	default:
		return 0
	}
}

// String intenta leer v como texto; el false de "campo vacío" queda en "".
func String(v interface{}) string {
	switch value := v.(type) {
	case string:
		return value
	case []byte:
		return string(value)
	case time.Time:
		return value.Format("2006-01-02 15:04:05")
	default:
		return ""
	}
}

// Records interpreta v como lista de registros (maps), descartando
// cualquier elemento que no tenga esa forma.
func Records(v interface{}) []map[string]interface{} {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	records := make([]map[string]interface{}, 0, len(list))
	for _, item := range list {
		if record, ok := item.(map[string]interface{}); ok {
			records = append(records, record)
		}
	}
	return records
}

// Ints interpreta v como lista de enteros (ids de search).
func Ints(v interface{}) []int {
	list, ok := v.([]interface{})
	if !ok {
		return nil
	}

	ids := make([]int, 0, len(list))
	for _, item := range list {
		if id, ok := Int(item); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// Pair interpreta v como el par (id, nombre) de un many2one de Odoo.
// Cualquier otra forma (false, lista corta, tipos raros) devuelve ok=false.
func Pair(v interface{}) (int, string, bool) {
	list, ok := v.([]interface{})
	if !ok || len(list) < 2 {
		return 0, "", false
	}

	id, ok := Int(list[0])
	if !ok {
		return 0, "", false
	}
	name, ok := list[1].(string)
	if !ok {
		return 0, "", false
	}
	return id, name, true
}
