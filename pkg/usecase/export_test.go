package usecase

// FoldPage is exported for testing
var FoldPage = foldPage
