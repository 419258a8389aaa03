package chrono

var DivideAndRoundIntFunc = divideAndRoundInt
