package parser

import (
	"regexp"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Класс идентификатора: латиница и кириллица. Цифры и прочие символы не распознаются.
const ident = `a-zA-Zа-яА-Я`

const modifiers = `(public|private|protected)`

var (
	reSpaces        = regexp.MustCompile(`\s+`)
	reSpacesOrParen = regexp.MustCompile(`\s+|\(`)
)

// ClassParser извлекает члены класса набором независимых регулярных выражений.
// Каждый проход идет по всему тексту, вложенные и соседние классы сливаются.
type ClassParser struct {
	FieldRegex    *regexp.Regexp
	PropertyRegex *regexp.Regexp
	AccessorRegex *regexp.Regexp
	ConstantRegex *regexp.Regexp
	MethodRegex   *regexp.Regexp
	CtorRegex     *regexp.Regexp
	ModifierRegex *regexp.Regexp
	HeaderRegex   *regexp.Regexp
}

func NewClassParser() *ClassParser {
	return &ClassParser{
		// <mod> <type> <names...>;
		FieldRegex: regexp.MustCompile(modifiers + ` [` + ident + ` _]* *;`),
		// <mod> <type> <name> { get; set; }
		PropertyRegex: regexp.MustCompile(modifiers + ` [` + ident + ` ]* * \{ *get; *set; *\}`),
		AccessorRegex: regexp.MustCompile(`\{ *get; *set; *\}`),
		// <mod> const <type> <name> = <literal>;
		ConstantRegex: regexp.MustCompile(modifiers + ` *const * [` + ident + ` _]* *=[` + ident + ` _"]*;`),
		// <mod> <returnType> <name>(<params>
		MethodRegex: regexp.MustCompile(modifiers + ` *[` + ident + `]+ [` + ident + `]* *\(([` + ident + ` ,*])*`),
		// <mod> <Name>(<params>
		CtorRegex:     regexp.MustCompile(modifiers + ` *[` + ident + `]* *\(([` + ident + ` ,*])*`),
		ModifierRegex: regexp.MustCompile(modifiers),
		// <mod> class <Name> : <parents>
		HeaderRegex: regexp.MustCompile(modifiers + ` *class * [` + ident + ` _\r\n]* *:[` + ident + ` _,\r\n]*`),
	}
}

var defaultParser = NewClassParser()

// Extract разбирает текст класса парсером по умолчанию
func Extract(classText, className string) ClassRecord {
	return defaultParser.Parse(classText, className)
}

// Parse строит ClassRecord. Не сопоставившиеся объявления молча пропускаются.
func (p *ClassParser) Parse(classText, className string) ClassRecord {
	return ClassRecord{
		ClassName:    className,
		Fields:       p.parseFields(classText),
		Properties:   p.parseProperties(classText),
		Constants:    p.parseConstants(classText),
		Methods:      p.parseMethods(classText),
		Constructors: p.parseConstructors(classText, className),
		Parents:      p.parseParents(classText),
	}
}

// words результат разбиения объявления. Отсутствующее слово читается как "".
type words []string

func splitWords(s string) words {
	return reSpaces.Split(s, -1)
}

func (w words) at(i int) string {
	if i < 0 || i >= len(w) {
		return ""
	}
	return w[i]
}

func (w words) last() string {
	return w.at(len(w) - 1)
}

// expect логирует объявление, в котором меньше слов, чем нужно
func expect(kind, decl string, w words, n int) {
	if len(w) < n {
		log.WithFields(log.Fields{
			"kind":        kind,
			"declaration": decl,
		}).Debug("Unsupported declaration shape")
	}
}

func (p *ClassParser) parseFields(text string) []PropertyInfo {
	matches := p.FieldRegex.FindAllString(text, -1)
	fields := make([]PropertyInfo, 0, len(matches))
	for _, m := range matches {
		w := splitWords(m)
		expect("field", m, w, 3)
		fields = append(fields, PropertyInfo{
			AccessModifier: w.at(0),
			Type:           w.at(1),
			Name:           strings.ReplaceAll(w.last(), ";", ""),
		})
	}
	return fields
}

func (p *ClassParser) parseProperties(text string) []PropertyInfo {
	matches := p.PropertyRegex.FindAllString(text, -1)
	props := make([]PropertyInfo, 0, len(matches))
	for _, m := range matches {
		decl := strings.TrimSpace(p.AccessorRegex.ReplaceAllString(m, ""))
		w := splitWords(decl)
		expect("property", decl, w, 3)
		props = append(props, PropertyInfo{
			AccessModifier: w.at(0),
			Type:           w.at(1),
			Name:           w.last(),
		})
	}
	return props
}

func (p *ClassParser) parseConstants(text string) []ConstInfo {
	matches := p.ConstantRegex.FindAllString(text, -1)
	consts := make([]ConstInfo, 0, len(matches))
	for _, m := range matches {
		decl := strings.NewReplacer("const", "", "=", "", ";", "").Replace(m)
		decl = strings.TrimSpace(decl)

		w := splitWords(decl)
		expect("constant", decl, w, 3)
		c := ConstInfo{
			PropertyInfo: PropertyInfo{
				AccessModifier: w.at(0),
				Type:           w.at(1),
				Name:           w.at(2),
			},
		}

		// Значение: остаток после удаления уже известных слов и кавычек
		value := strings.ReplaceAll(decl, c.AccessModifier, "")
		value = strings.ReplaceAll(value, c.Name, "")
		value = strings.ReplaceAll(value, c.Type, "")
		value = strings.ReplaceAll(value, `"`, "")
		c.Value = strings.TrimSpace(value)

		consts = append(consts, c)
	}
	return consts
}

func (p *ClassParser) parseMethods(text string) []MethodInfo {
	matches := p.MethodRegex.FindAllString(text, -1)
	methods := make([]MethodInfo, 0, len(matches))
	for _, m := range matches {
		w := words(reSpacesOrParen.Split(m, -1))
		expect("method", m, w, 3)
		method := MethodInfo{
			AccessModifier: w.at(0),
			ReturnType:     w.at(1),
			Name:           w.at(2),
		}

		// Параметры восстанавливаются удалением известных слов из совпадения.
		// Параметр, совпадающий по тексту с именем или типом, портится.
		params := strings.ReplaceAll(m, method.AccessModifier, "")
		params = strings.ReplaceAll(params, method.Name, "")
		params = strings.ReplaceAll(params, method.ReturnType, "")
		params = strings.ReplaceAll(params, "(", "")

		method.Parameters = make([]VariableInfo, 0)
		for _, piece := range strings.Split(strings.TrimSpace(params), ",") {
			piece = strings.TrimSpace(piece)
			if piece == "" {
				continue
			}
			pw := splitWords(piece)
			method.Parameters = append(method.Parameters, VariableInfo{
				Type: pw.at(0),
				Name: pw.last(),
			})
		}

		methods = append(methods, method)
	}
	return methods
}

func (p *ClassParser) parseConstructors(text, className string) []CtorInfo {
	matches := p.CtorRegex.FindAllString(text, -1)
	ctors := make([]CtorInfo, 0, len(matches))
	for _, m := range matches {
		decl := m
		if className != "" {
			decl = strings.ReplaceAll(decl, className, "")
		}
		decl = strings.ReplaceAll(decl, "(", "")
		decl = p.ModifierRegex.ReplaceAllString(decl, "")

		ctor := CtorInfo{Parameters: make([]VariableInfo, 0)}
		for _, piece := range strings.Split(decl, ",") {
			if strings.TrimSpace(piece) == "" {
				continue
			}
			// Тип и имя берутся по позициям 0 и 1, а не первое/последнее, как у методов
			pw := splitWords(strings.TrimSpace(piece))
			expect("constructor parameter", piece, pw, 2)
			ctor.Parameters = append(ctor.Parameters, VariableInfo{
				Type: pw.at(0),
				Name: pw.at(1),
			})
		}

		ctors = append(ctors, ctor)
	}
	return ctors
}
