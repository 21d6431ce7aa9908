// Пакет analyzer реализует морфологический анализатор верхнего уровня:
// загружает сериализованный Morphologist (см. morph.DeserializeMorphologist)
// через mmap для Zero-Copy чтения и предоставляет API разбора, склонения
// и предсказания несловарных слов поверх него.
package analyzer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"sync"

	"github.com/edsrzf/mmap-go"

	"github.com/steosofficial/steosmorphy/encoding"
	"github.com/steosofficial/steosmorphy/morph"
)

// EnvDictPath - имя переменной окружения для переопределения пути к словарю.
const EnvDictPath = "STEOSMORPHY_DICT_PATH"

// predictRule - одно правило предсказания: наблюдаемый суффикс и образец
// (слово-образец + его лемма + теги), по аналогии с которым разбирается
// несловарное слово с тем же суффиксом.
type predictRule struct {
	suffix        string
	wordTemplate  string
	lemmaTemplate string
	attr          uint32
}

// MorphAnalyzer - основная структура, хранящая морфологический анализатор
// и производный индекс предсказания для несловарных слов.
type MorphAnalyzer struct {
	m            *morph.Morphologist
	predictIndex map[string][]predictRule

	// Ссылка на mmap-объект, чтобы он не был собран сборщиком мусора
	// и память оставалась доступной, пока анализатор используется.
	mmapFile mmap.MMap
}

// LoadMorphAnalyzer - конструктор анализатора. Смотрит переменную окружения
// EnvDictPath, иначе использует "morph.dict" рядом с пакетом, объединяя
// части "morph_aa", "morph_ab", ... если объединенный файл отсутствует.
func LoadMorphAnalyzer() (*MorphAnalyzer, error) {
	dictPath := os.Getenv(EnvDictPath)
	if dictPath != "" {
		return loadInternal(dictPath)
	}

	_, currentFilePath, _, ok := runtime.Caller(0)
	if !ok {
		return nil, errors.New("не удалось определить путь к пакету steosmorphy")
	}

	packageDir := filepath.Dir(currentFilePath)
	dictPath = filepath.Join(packageDir, "morph.dict")

	if _, err := os.Stat(dictPath); os.IsNotExist(err) {
		fmt.Printf("Объединенный файл словаря '%s' не найден. Ищем части для объединения.\n", dictPath)

		dirToSearchParts := filepath.Dir(dictPath)
		if dirToSearchParts == "" {
			dirToSearchParts = "."
		}

		err = mergeFilesWithPrefix(dirToSearchParts, "morph_", dictPath)
		if err != nil {
			if strings.Contains(err.Error(), "не найдено файлов с префиксом") {
				return nil, fmt.Errorf(
					"словарь или его части не найдены по вычисленному пути '%s'. "+
						"Убедитесь, что библиотека установлена корректно и файлы 'morph_aa', 'morph_ab', ... присутствуют. "+
						"Либо установите переменную окружения %s",
					dictPath, EnvDictPath,
				)
			}
			return nil, fmt.Errorf("ошибка при объединении частей словаря: %w", err)
		}
		fmt.Printf("Части словаря успешно объединены в '%s'.\n", dictPath)
	}

	if _, err := os.Stat(dictPath); os.IsNotExist(err) {
		return nil, fmt.Errorf(
			"словарь не найден по вычисленному пути '%s'. "+
				"Убедитесь, что библиотека установлена корректно и файл 'morph.dict' присутствует. "+
				"Либо установите переменную окружения %s",
			dictPath, EnvDictPath,
		)
	}

	return loadInternal(dictPath)
}

// NewMorphAnalyzer wraps an already-built Morphologist — e.g. one just
// produced by AotImporter.Build — without going through the mmap/file
// load path. Useful for embedding or testing against an in-memory
// dictionary.
func NewMorphAnalyzer(m *morph.Morphologist) *MorphAnalyzer {
	a := &MorphAnalyzer{m: m}
	a.buildPredictIndex()
	return a
}

// loadInternal отображает файл в память через mmap и десериализует из него
// Morphologist; предикторный индекс строится сразу после загрузки.
func loadInternal(path string) (*MorphAnalyzer, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	mmapFile, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("ошибка mmap.Map: %w", err)
	}

	m, err := morph.DeserializeMorphologist(bytes.NewReader(mmapFile), encoding.Russian)
	if err != nil {
		_ = mmapFile.Unmap()
		return nil, fmt.Errorf("ошибка десериализации словаря: %w", err)
	}

	a := NewMorphAnalyzer(m)
	a.mmapFile = mmapFile
	return a, nil
}

// Close отменяет отображение словаря в память. После вызова Close
// анализатор использовать нельзя.
func (a *MorphAnalyzer) Close() error {
	if a.mmapFile == nil {
		return nil
	}
	return a.mmapFile.Unmap()
}

// mergeFilesWithPrefix объединяет файлы с заданным префиксом в один большой файл.
func mergeFilesWithPrefix(sourceDir, prefix, outputPath string) error {
	var partFiles []string
	err := filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && filepath.Base(path) != filepath.Base(outputPath) && strings.HasPrefix(filepath.Base(path), prefix) {
			partFiles = append(partFiles, path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("ошибка при поиске файлов: %w", err)
	}
	if len(partFiles) == 0 {
		return fmt.Errorf("не найдено файлов с префиксом '%s' в директории '%s'", prefix, sourceDir)
	}

	sort.Strings(partFiles)

	outFile, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("ошибка создания выходного файла %s: %w", outputPath, err)
	}
	defer outFile.Close()

	for _, partPath := range partFiles {
		inFile, err := os.Open(partPath)
		if err != nil {
			return fmt.Errorf("ошибка открытия части файла %s: %w", partPath, err)
		}
		_, err = copyFile(outFile, inFile)
		inFile.Close()
		if err != nil {
			return fmt.Errorf("ошибка копирования данных из %s в %s: %w", partPath, outputPath, err)
		}
	}
	return nil
}

func copyFile(dst *os.File, src *os.File) (int64, error) {
	buf := make([]byte, 64*1024)
	var total int64
	for {
		n, err := src.Read(buf)
		if n > 0 {
			if _, werr := dst.Write(buf[:n]); werr != nil {
				return total, werr
			}
			total += int64(n)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return total, nil
			}
			return total, err
		}
	}
}

// buildPredictIndex строит обратный индекс суффиксов для предсказания
// несловарных слов: для каждой строки суффиксов берется один лемма-образец
// и для каждого (суффикс, тег) из GenerateForms индексируются все суффиксы
// этого образца длиной от 1 до 5 символов.
func (a *MorphAnalyzer) buildPredictIndex() {
	a.predictIndex = make(map[string][]predictRule)

	seenLine := make(map[morph.LineID]bool)
	a.m.EachLemma(func(id morph.LemmaID, _ []byte, mainForm string, line morph.LineID) {
		if seenLine[line] {
			return
		}
		seenLine[line] = true

		for _, fa := range a.m.GenerateForms(id) {
			runes := []rune(fa.Word)
			for n := 1; n <= 5 && n <= len(runes); n++ {
				suffix := string(runes[len(runes)-n:])
				a.predictIndex[suffix] = append(a.predictIndex[suffix], predictRule{
					suffix:        suffix,
					wordTemplate:  fa.Word,
					lemmaTemplate: mainForm,
					attr:          fa.Attr,
				})
			}
		}
	})
}

// Analyze - главный публичный метод. Принимает слово и возвращает разбор
// и все его словоформы. Сначала пробует словарный разбор, затем - при его
// отсутствии - предсказание по аналогии.
func (a *MorphAnalyzer) Analyze(word string) ([]*Parsed, []*Parsed) {
	parses := a.Parse(word)
	if len(parses) > 0 {
		return parses, a.Inflect(word)
	}
	predicted := a.ParsePredicted(word)
	if predicted == nil {
		return nil, nil
	}
	return predicted, a.Predict(word, predicted[0].Lemma)
}

// Parse ищет слово в словаре и возвращает все его разборы.
func (a *MorphAnalyzer) Parse(word string) []*Parsed {
	var results []*Parsed
	for _, l := range a.m.Analyze(word) {
		lemma := a.m.MainForm(l.LemmaID)
		results = append(results, newParsed(word, lemma, l.Attr))
	}
	return results
}

// Inflect генерирует все словоформы для словарного слова.
func (a *MorphAnalyzer) Inflect(word string) []*Parsed {
	lemmas := a.m.Analyze(word)
	if len(lemmas) == 0 {
		return nil
	}

	seen := make(map[morph.LemmaID]bool)
	finalResults := make(map[string]*Parsed)
	for _, l := range lemmas {
		if seen[l.LemmaID] {
			continue
		}
		seen[l.LemmaID] = true

		lemmaForm := a.m.MainForm(l.LemmaID)
		for _, fa := range a.m.GenerateForms(l.LemmaID) {
			if _, exists := finalResults[fa.Word]; !exists {
				finalResults[fa.Word] = newParsed(fa.Word, lemmaForm, fa.Attr)
			}
		}
	}

	return sortedParsed(finalResults)
}

// ParsePredicted пытается предсказать разбор для несловарного слова по
// самому длинному известному суффиксу.
func (a *MorphAnalyzer) ParsePredicted(word string) []*Parsed {
	lowerWord := strings.ToLower(word)
	rule := a.findBestPrediction(lowerWord)
	if rule == nil {
		return nil
	}

	lemma := proportionalLemma(lowerWord, rule)
	return []*Parsed{newParsed(word, lemma, rule.attr)}
}

// Predict генерирует словоформы для несловарного слова, подставляя его
// префикс в каждую форму парадигмы-образца.
func (a *MorphAnalyzer) Predict(word, lemma string) []*Parsed {
	lowerWord := strings.ToLower(word)
	rule := a.findBestPrediction(lowerWord)
	if rule == nil {
		return nil
	}

	inputPrefix := strings.TrimSuffix(lowerWord, rule.suffix)
	dictPrefix := strings.TrimSuffix(rule.wordTemplate, rule.suffix)

	results := make(map[string]*Parsed)
	for _, cand := range a.predictIndex[rule.suffix] {
		if cand.lemmaTemplate != rule.lemmaTemplate {
			continue
		}
		if !strings.HasPrefix(cand.wordTemplate, dictPrefix) {
			continue
		}
		ending := strings.TrimPrefix(cand.wordTemplate, dictPrefix)
		form := inputPrefix + ending
		if _, exists := results[form]; !exists {
			results[form] = newParsed(form, lemma, cand.attr)
		}
	}

	return sortedParsed(results)
}

// findBestPrediction ищет правило с самым длинным известным суффиксом
// (от 5 до 1 символа) слова word.
func (a *MorphAnalyzer) findBestPrediction(word string) *predictRule {
	runes := []rune(word)
	for n := 5; n >= 1; n-- {
		if n > len(runes) {
			continue
		}
		suffix := string(runes[len(runes)-n:])
		if rules, ok := a.predictIndex[suffix]; ok && len(rules) > 0 {
			best := rules[0]
			return &best
		}
	}
	return nil
}

// proportionalLemma вычисляет лемму несловарного слова "по аналогии" с
// правилом-образцом: заменяет общий суффикс в слове-образце на суффикс
// его леммы, и переносит получившееся окончание на входное слово.
func proportionalLemma(word string, rule *predictRule) string {
	if !strings.HasSuffix(rule.wordTemplate, rule.suffix) {
		return word
	}
	templatePrefix := strings.TrimSuffix(rule.wordTemplate, rule.suffix)
	if !strings.HasPrefix(rule.lemmaTemplate, templatePrefix) {
		return word
	}
	lemmaEnding := strings.TrimPrefix(rule.lemmaTemplate, templatePrefix)
	inputPrefix := strings.TrimSuffix(word, rule.suffix)
	return inputPrefix + lemmaEnding
}

func sortedParsed(m map[string]*Parsed) []*Parsed {
	if len(m) == 0 {
		return nil
	}
	out := make([]*Parsed, 0, len(m))
	for _, p := range m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Word < out[j].Word })
	return out
}

// ParseList анализирует срез слов в конкурентном режиме, используя пул
// воркеров над уже построенным, неизменяемым словарем.
func (a *MorphAnalyzer) ParseList(words []string) []*Parsed {
	return a.runWorkerPool(words, func(word string) []*Parsed {
		parses, _ := a.Analyze(word)
		return parses
	})
}

// InflectList анализирует срез слов, возвращает срез всех словоформ.
func (a *MorphAnalyzer) InflectList(words []string) []*Parsed {
	return a.runWorkerPool(words, func(word string) []*Parsed {
		_, forms := a.Analyze(word)
		return forms
	})
}

// runWorkerPool нарезает words на чанки и обрабатывает их в
// runtime.NumCPU() воркерах, а затем сортирует объединенный результат.
func (a *MorphAnalyzer) runWorkerPool(words []string, process func(string) []*Parsed) []*Parsed {
	const chunkSize = 1000
	numWorkers := runtime.NumCPU()

	chunksCh := make(chan []string, numWorkers)
	resultCh := make(chan []*Parsed, numWorkers)

	var wg sync.WaitGroup
	wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer wg.Done()
			for chunk := range chunksCh {
				chunkResult := make([]*Parsed, 0, len(chunk))
				for _, word := range chunk {
					if parsed := process(word); parsed != nil {
						chunkResult = append(chunkResult, parsed...)
					}
				}
				resultCh <- chunkResult
			}
		}()
	}

	go func() {
		for i := 0; i < len(words); i += chunkSize {
			end := i + chunkSize
			if end > len(words) {
				end = len(words)
			}
			chunksCh <- words[i:end]
		}
		close(chunksCh)
	}()

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	allParsed := make([]*Parsed, 0, len(words))
	for result := range resultCh {
		allParsed = append(allParsed, result...)
	}

	sort.Slice(allParsed, func(i, j int) bool { return allParsed[i].Word < allParsed[j].Word })
	return allParsed
}
