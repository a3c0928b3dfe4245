package homework

import "fmt"

// Name returns homework_name when it is present and a string.
func (r Record) Name() (string, bool) {
	name, ok := r["homework_name"].(string)
	return name, ok
}

// Status returns the raw status value when it is present and a string.
func (r Record) Status() (string, bool) {
	status, ok := r["status"].(string)
	return status, ok
}

// ParseStatus renders the notification text for a single homework record.
func ParseStatus(rec Record, verdicts Verdicts) (string, error) {
	name, ok := rec.Name()
	if !ok {
		return "", Errorf(KindMissingField, "Ошибка извлечения информации о домашней работе.")
	}

	status, _ := rec.Status()
	verdict, ok := verdicts.Lookup(status)
	if !ok {
		return "", Errorf(KindUnknownStatus, "Неизвестный статус домашней работы: %q", status)
	}

	return fmt.Sprintf("Изменился статус проверки работы \"%s\". %s", name, verdict), nil
}
