package template

// Substitute exposes placeholder substitution to tests.
var Substitute = substitute
