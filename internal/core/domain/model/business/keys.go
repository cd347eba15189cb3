package business

// LegacyOrdersKey is the unscoped key older deployments stored every order under.
const LegacyOrdersKey = "orders"

// OrdersKey returns the storage key holding the order collection of id.
func OrdersKey(id ID) string {
	return LegacyOrdersKey + ":" + string(id)
}
