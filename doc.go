/*
Package stockroom provides lifecycle-driven component storage for games and simulations.

Stockroom keeps every component type in its own densely packed, append-only
collection. Each stored instance sits behind an individual borrow cell that
enforces a single-writer/multi-reader discipline at runtime, so components can
read siblings through the shared world while a lifecycle pass is mutating them.

Core Concepts:

  - Entity: A dense integer handle that represents a game object.
  - Component: A value implementing Setup and Update lifecycle hooks.
  - TypedCollection: The per-type, append-only store of component instances.
  - World: The single owner of all storage and entity-to-component mappings.
  - Query: A mask-based filter for entities with specific component combinations.

Basic Usage:

	// Create a world with a schema
	schema := table.Factory.NewSchema()
	world := stockroom.Factory.NewWorld(schema)

	// Create an entity and attach components
	player := world.CreateEntity()
	stockroom.RegisterComponent(world, player, &Position{X: 10})
	stockroom.RegisterComponent(world, player, &Velocity{X: 1})

	// Run the lifecycle: one setup pass, then one update pass per tick
	world.SetupComponents()
	for i := 0; i < ticks; i++ {
		world.UpdateComponents()
	}

	// Read a component back
	if ref, ok := stockroom.GetEntityComponent[*Position](world, player); ok {
		fmt.Println(ref.Value().X)
		ref.Release()
	}

Component ids are stable for the lifetime of a world: collections never
compact, so an index handed out by RegisterComponent keeps pointing at the
same instance. Borrow conflicts are programming errors and fail loudly rather
than blocking, mirroring a RefCell-style contract.

Stockroom is the lifecycle storage experiment for the Bappa Framework but also
works as a standalone library.
*/
package stockroom
