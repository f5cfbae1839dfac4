package parser

import "strings"

// parseParents возвращает список после двоеточия в заголовке класса.
// Без наследования результат [""], см. ClassRecord.HasParents.
func (p *ClassParser) parseParents(text string) []string {
	header := p.HeaderRegex.FindString(text)
	if strings.TrimSpace(header) != "" {
		header = header[strings.Index(header, ":")+1:]
		header = strings.NewReplacer("\r", "", "\n", "").Replace(header)
		header = strings.TrimSpace(header)
	}

	parents := strings.Split(header, ",")
	for i := range parents {
		parents[i] = strings.TrimSpace(parents[i])
	}
	return parents
}
