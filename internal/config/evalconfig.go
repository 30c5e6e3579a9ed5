//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package config

// evalConfiguration holds the tunables of the evaluator.
type evalConfiguration struct {
	// tapered evaluation
	OpeningMaterial int16

	// mobility weights, per legal destination square
	MobilityRookBonus   int16
	MobilityHorseBonus  int16
	MobilityCannonBonus int16

	// king safety
	KingSafetyPenalty int16

	// pattern bonuses
	BottomCannonBonus   int16
	PalaceHeartHorseBonus int16
	ConnectedHorsesBonus  int16
	RookOnRibFileBonus    int16

	// dynamic attacker bonus, per missing enemy defender
	MissingDefenderBonus int16
}

func init() {
	// both colors' starting non-pawn, non-king material: 2 colors * 2 of each * (900+450+500+100+100)
	Settings.Eval.OpeningMaterial = 8200

	Settings.Eval.MobilityRookBonus = 1
	Settings.Eval.MobilityHorseBonus = 3
	Settings.Eval.MobilityCannonBonus = 1

	Settings.Eval.KingSafetyPenalty = 10

	Settings.Eval.BottomCannonBonus = 15
	Settings.Eval.PalaceHeartHorseBonus = 10
	Settings.Eval.ConnectedHorsesBonus = 8
	Settings.Eval.RookOnRibFileBonus = 12

	Settings.Eval.MissingDefenderBonus = 5
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupEval() {
}
