package domain

import "fmt"

// Properties - типизированный валидируемый набор свойств сущности.
// Значения приходят из авторских данных уровня; набор сливается
// поверх дефолтов вида и проверяется по его схеме.
type Properties map[string]any

// PropType - ожидаемый примитивный тип свойства
type PropType uint8

const (
	PropString PropType = iota
	PropInt
	PropBool
	PropStringList
)

func (t PropType) String() string {
	switch t {
	case PropString:
		return "string"
	case PropInt:
		return "int"
	case PropBool:
		return "bool"
	case PropStringList:
		return "string list"
	}
	return "unknown"
}

// PropSpec описывает контракт одного свойства: обязательность, тип,
// множество допустимых значений (для строк) и значение по умолчанию.
// Default может быть func() any - тогда фабрика вызывается при
// конструировании сущности (так генерируются уникальные ID по умолчанию).
type PropSpec struct {
	Type     PropType
	Required bool
	Enum     []string
	Default  any
}

// Schema - контракт свойств для одного вида сущностей
type Schema map[string]PropSpec

// Apply сливает props поверх дефолтов схемы (значения вызывающего
// побеждают), вычисляет отложенные дефолты и валидирует результат.
// Ошибка валидации фатальна для загрузки уровня.
func (s Schema) Apply(kind Kind, props Properties) (Properties, error) {
	merged := make(Properties, len(s)+len(props))

	for name, spec := range s {
		if spec.Default != nil {
			merged[name] = spec.Default
		}
	}
	for name, v := range props {
		merged[name] = v
	}

	for name, v := range merged {
		// Отложенная фабрика значения заменяется результатом вызова
		if fn, ok := v.(func() any); ok {
			merged[name] = fn()
			continue
		}
		// YAML отдает списки как []any; нормализуем до []string
		if raw, ok := v.([]any); ok {
			list := make([]string, 0, len(raw))
			for _, item := range raw {
				str, ok := item.(string)
				if !ok {
					return nil, fmt.Errorf("%s: property %q: list element %v is not a string", kind, name, item)
				}
				list = append(list, str)
			}
			merged[name] = list
		}
	}

	for name, spec := range s {
		v, present := merged[name]
		if !present {
			if spec.Required {
				return nil, fmt.Errorf("%s: missing required property %q", kind, name)
			}
			continue
		}
		if err := spec.check(v); err != nil {
			return nil, fmt.Errorf("%s: property %q: %w", kind, name, err)
		}
	}

	return merged, nil
}

func (spec PropSpec) check(v any) error {
	switch spec.Type {
	case PropString:
		str, ok := v.(string)
		if !ok {
			return fmt.Errorf("expected %s, got %T", spec.Type, v)
		}
		if len(spec.Enum) > 0 {
			for _, allowed := range spec.Enum {
				if str == allowed {
					return nil
				}
			}
			return fmt.Errorf("value %q is not one of %v", str, spec.Enum)
		}
	case PropInt:
		if _, ok := v.(int); !ok {
			return fmt.Errorf("expected %s, got %T", spec.Type, v)
		}
	case PropBool:
		if _, ok := v.(bool); !ok {
			return fmt.Errorf("expected %s, got %T", spec.Type, v)
		}
	case PropStringList:
		if _, ok := v.([]string); !ok {
			return fmt.Errorf("expected %s, got %T", spec.Type, v)
		}
	}
	return nil
}

// Типобезопасные геттеры. Валидация уже прошла, поэтому несовпадение
// типа означает отсутствие свойства.

func (p Properties) GetString(name string) (string, bool) {
	v, ok := p[name].(string)
	return v, ok
}

func (p Properties) GetInt(name string) (int, bool) {
	v, ok := p[name].(int)
	return v, ok
}

func (p Properties) GetBool(name string) (bool, bool) {
	v, ok := p[name].(bool)
	return v, ok
}

func (p Properties) GetStringList(name string) ([]string, bool) {
	v, ok := p[name].([]string)
	return v, ok
}

func (p Properties) IntOr(name string, fallback int) int {
	if v, ok := p.GetInt(name); ok {
		return v
	}
	return fallback
}

func (p Properties) BoolOr(name string, fallback bool) bool {
	if v, ok := p.GetBool(name); ok {
		return v
	}
	return fallback
}

func (p Properties) StringOr(name, fallback string) string {
	if v, ok := p.GetString(name); ok {
		return v
	}
	return fallback
}
