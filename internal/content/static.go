package content

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"slices"

	"github.com/origenlab/backend/internal/domain/material"
	"github.com/origenlab/backend/internal/domain/topic"
)

// Static serves a fixed glossary per topic. It needs no network and backs
// offline mode, the demo walkthrough and tests.
type Static struct{}

var _ Provider = Static{}

var glossary = map[topic.ID][]material.Item{
	topic.Evolucion: {
		{ID: "evo-seleccion", Prompt: "Selección natural", Answer: "Proceso por el que los individuos mejor adaptados dejan más descendencia."},
		{ID: "evo-mutacion", Prompt: "Mutación", Answer: "Cambio en la secuencia del material genético."},
		{ID: "evo-especiacion", Prompt: "Especiación", Answer: "Formación de nuevas especies a partir de una población ancestral."},
		{ID: "evo-adaptacion", Prompt: "Adaptación", Answer: "Rasgo heredable que aumenta la supervivencia en un ambiente."},
		{ID: "evo-fosil", Prompt: "Fósil", Answer: "Resto o huella de un organismo conservado en las rocas."},
	},
	topic.Abiogenesis: {
		{ID: "abio-sopa", Prompt: "Sopa primitiva", Answer: "Mezcla de compuestos orgánicos en los océanos de la Tierra temprana."},
		{ID: "abio-monomero", Prompt: "Monómero", Answer: "Molécula pequeña que se une a otras para formar polímeros."},
		{ID: "abio-arn", Prompt: "Mundo de ARN", Answer: "Hipótesis de que el ARN fue la primera molécula replicadora."},
		{ID: "abio-protocelula", Prompt: "Protocélula", Answer: "Vesícula lipídica precursora de las primeras células."},
		{ID: "abio-autocatalisis", Prompt: "Autocatálisis", Answer: "Reacción cuyo producto acelera su propia formación."},
	},
	topic.VanHelmont: {
		{ID: "vh-generacion", Prompt: "Generación espontánea", Answer: "Creencia de que la vida surge de la materia inerte."},
		{ID: "vh-receta", Prompt: "Receta de ratones", Answer: "Experimento con camisa sucia y trigo que supuestamente producía ratones."},
		{ID: "vh-sauce", Prompt: "Experimento del sauce", Answer: "Estudio del crecimiento de un árbol midiendo tierra y agua."},
		{ID: "vh-principio", Prompt: "Principio activo", Answer: "Fuerza vital que según los vitalistas animaba la materia."},
		{ID: "vh-redi", Prompt: "Francesco Redi", Answer: "Demostró que los gusanos de la carne vienen de huevos de mosca."},
	},
	topic.Pasteur: {
		{ID: "pa-matraz", Prompt: "Matraz de cuello de cisne", Answer: "Recipiente curvo que impide la entrada de microbios del aire."},
		{ID: "pa-biogenesis", Prompt: "Biogénesis", Answer: "Principio de que todo ser vivo procede de otro ser vivo."},
		{ID: "pa-pasteurizacion", Prompt: "Pasteurización", Answer: "Calentamiento moderado que elimina microorganismos de un alimento."},
		{ID: "pa-esterilizar", Prompt: "Esterilización", Answer: "Eliminación de toda forma de vida de un medio."},
		{ID: "pa-microbio", Prompt: "Microorganismo", Answer: "Ser vivo que solo puede observarse con microscopio."},
	},
	topic.HaldaneOparin: {
		{ID: "ho-coacervado", Prompt: "Coacervado", Answer: "Gota de moléculas orgánicas rodeada de agua, propuesta por Oparín."},
		{ID: "ho-atmosfera", Prompt: "Atmósfera reductora", Answer: "Atmósfera primitiva sin oxígeno libre, rica en metano y amoníaco."},
		{ID: "ho-quimiosintesis", Prompt: "Evolución química", Answer: "Formación gradual de moléculas complejas a partir de simples."},
		{ID: "ho-energia", Prompt: "Fuentes de energía", Answer: "Rayos, radiación ultravioleta y calor volcánico de la Tierra primitiva."},
		{ID: "ho-heterotrofo", Prompt: "Heterótrofo primitivo", Answer: "Primer organismo que se alimentaba de la sopa orgánica."},
	},
	topic.UreyMiller: {
		{ID: "um-aparato", Prompt: "Aparato de Miller", Answer: "Sistema cerrado de vidrio que simuló la atmósfera primitiva."},
		{ID: "um-aminoacido", Prompt: "Aminoácido", Answer: "Molécula orgánica que forma las proteínas."},
		{ID: "um-descarga", Prompt: "Descarga eléctrica", Answer: "Chispa usada para simular los rayos de la Tierra primitiva."},
		{ID: "um-gases", Prompt: "Metano, amoníaco e hidrógeno", Answer: "Gases usados en el experimento junto con vapor de agua."},
		{ID: "um-1953", Prompt: "1953", Answer: "Año de publicación del experimento de Urey y Miller."},
	},
	topic.Panspermia: {
		{ID: "pn-meteorito", Prompt: "Meteorito", Answer: "Roca espacial que alcanza la superficie terrestre."},
		{ID: "pn-arrhenius", Prompt: "Svante Arrhenius", Answer: "Científico que popularizó la panspermia a inicios del siglo XX."},
		{ID: "pn-extremofilo", Prompt: "Extremófilo", Answer: "Organismo que sobrevive en condiciones extremas."},
		{ID: "pn-murchison", Prompt: "Meteorito de Murchison", Answer: "Meteorito que contenía aminoácidos de origen extraterrestre."},
		{ID: "pn-dirigida", Prompt: "Panspermia dirigida", Answer: "Idea de que la vida fue sembrada deliberadamente por otra civilización."},
	},
}

var hangmanWords = map[topic.ID][]material.Word{
	topic.Evolucion:     {{Word: "EVOLUCION", Hint: "Cambio de las especies a lo largo del tiempo"}, {Word: "SELECCION", Hint: "Natural, según Darwin"}},
	topic.Abiogenesis:   {{Word: "ABIOGENESIS", Hint: "Vida a partir de materia inerte"}, {Word: "PROTOCELULA", Hint: "Precursora de la célula"}},
	topic.VanHelmont:    {{Word: "TRIGO", Hint: "Ingrediente de la receta de ratones"}, {Word: "GENERACION", Hint: "Espontánea"}},
	topic.Pasteur:       {{Word: "MATRAZ", Hint: "Tenía cuello de cisne"}, {Word: "BIOGENESIS", Hint: "La vida procede de la vida"}},
	topic.HaldaneOparin: {{Word: "COACERVADO", Hint: "Gota orgánica de Oparín"}, {Word: "ATMOSFERA", Hint: "Era reductora"}},
	topic.UreyMiller:    {{Word: "AMINOACIDO", Hint: "Producto del experimento"}, {Word: "DESCARGA", Hint: "Simulaba los rayos"}},
	topic.Panspermia:    {{Word: "METEORITO", Hint: "Posible vehículo de la vida"}, {Word: "COMETA", Hint: "Cuerpo helado del sistema solar"}},
}

var showQuestions = []material.ShowQuestion{
	{
		Prompt: "Nombra un científico famoso por estudiar el origen de la vida",
		Answers: []material.Answer{
			{Text: "Darwin", Points: 35}, {Text: "Pasteur", Points: 25}, {Text: "Oparín", Points: 15},
			{Text: "Miller", Points: 12}, {Text: "Redi", Points: 8}, {Text: "Haldane", Points: 5},
		},
	},
	{
		Prompt: "Nombra algo que se necesita para que exista la vida",
		Answers: []material.Answer{
			{Text: "Agua", Points: 40}, {Text: "Energía", Points: 25}, {Text: "Carbono", Points: 15},
			{Text: "Oxígeno", Points: 12}, {Text: "Temperatura adecuada", Points: 8},
		},
	},
	{
		Prompt: "Nombra un instrumento de laboratorio",
		Answers: []material.Answer{
			{Text: "Microscopio", Points: 38}, {Text: "Matraz", Points: 22}, {Text: "Tubo de ensayo", Points: 18},
			{Text: "Pipeta", Points: 12}, {Text: "Mechero", Points: 10},
		},
	},
}

func (Static) Definitions(_ context.Context, t topic.ID) ([]material.Item, error) {
	items, ok := glossary[t]
	if !ok {
		return nil, fmt.Errorf("no glossary for topic %q", t)
	}
	out := make([]material.Item, len(items))
	copy(out, items)
	return out, nil
}

// Quiz turns the topic glossary into "which term matches this definition"
// questions, using the other terms of the topic as distractors.
func (Static) Quiz(_ context.Context, t topic.ID, count int) ([]material.Question, error) {
	items, ok := glossary[t]
	if !ok {
		return nil, fmt.Errorf("no glossary for topic %q", t)
	}
	if count > len(items) {
		count = len(items)
	}

	qs := make([]material.Question, 0, count)
	for i := 0; i < count; i++ {
		item := items[i]
		options := make([]string, 0, 4)
		for j := 1; len(options) < 3 && j < len(items); j++ {
			options = append(options, items[(i+j)%len(items)].Prompt)
		}
		correct := i % (len(options) + 1)
		options = slices.Insert(options, correct, item.Prompt)

		qs = append(qs, material.Question{
			Prompt:       fmt.Sprintf("¿Qué término corresponde a: «%s»?", item.Answer),
			Options:      options,
			CorrectIndex: correct,
			Explanation:  fmt.Sprintf("%s: %s", item.Prompt, item.Answer),
		})
	}
	return qs, nil
}

// ShowQuestion picks a canned question keyed by the requested text.
func (Static) ShowQuestion(_ context.Context, topicText string) (material.ShowQuestion, error) {
	h := fnv.New32a()
	h.Write([]byte(topicText))
	q := showQuestions[int(h.Sum32()%uint32(len(showQuestions)))]

	answers := make([]material.Answer, len(q.Answers))
	copy(answers, q.Answers)
	return material.ShowQuestion{Prompt: q.Prompt, Answers: answers}, nil
}

func (Static) HangmanWord(_ context.Context, t topic.ID) (material.Word, error) {
	words, ok := hangmanWords[t]
	if !ok {
		return material.Word{}, fmt.Errorf("no words for topic %q", t)
	}
	return words[rand.IntN(len(words))], nil
}
