package poker

import "strconv"

// Estimate é o voto de um participante numa rodada de planning poker
type Estimate struct {
	Name   string `json:"name"`
	Effort int    `json:"effort"`
}

// String formata a estimativa como "Nome(esforço)"
func (e Estimate) String() string {
	return e.Name + "(" + strconv.Itoa(e.Effort) + ")"
}

// Extremes contém a menor e a maior estimativa encontradas.
// nil indica ausência.
type Extremes struct {
	Lowest  *Estimate `json:"lowest"`
	Highest *Estimate `json:"highest"`
}

// HasLowest indica se uma menor estimativa foi selecionada
func (x Extremes) HasLowest() bool {
	return x.Lowest != nil
}

// HasHighest indica se uma maior estimativa foi selecionada
func (x Extremes) HasHighest() bool {
	return x.Highest != nil
}

// IdentifyExtremes percorre as estimativas na ordem recebida e seleciona a
// menor e a maior. Uma estimativa que se torna a nova maior não é comparada
// com a menor no mesmo passo. Empates nunca substituem o primeiro detentor.
func IdentifyExtremes(estimates []Estimate) Extremes {
	var lowest, highest *Estimate

	for _, estimate := range estimates {
		e := estimate
		if highest == nil || e.Effort > highest.Effort {
			highest = &e
		} else if lowest == nil || e.Effort < lowest.Effort {
			lowest = &e
		}
	}

	return Extremes{Lowest: lowest, Highest: highest}
}
