package download

// SetLookPath replaces the executable lookup of an invoker created by NewInvoker.
func SetLookPath(invoker Invoker, lookPath func(file string) (string, error)) {
	invoker.(*InvokerImpl).lookPath = lookPath
}
