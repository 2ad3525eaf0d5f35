package models

import "fmt"

var InvalidOptionSideErr = fmt.Errorf("option side must be call or put")
var InvalidNumStrikesErr = fmt.Errorf("num_strikes must be between 3 and 10")
var InvalidMaskProbabilityErr = fmt.Errorf("mask probability must be between 0 and 1, exclusive")
var AnswerCountMismatchErr = fmt.Errorf("user answers must contain one entry per ladder row")
var InvalidSubmittedPriceErr = fmt.Errorf("submitted price is not a valid number")
