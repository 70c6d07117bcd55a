package gallos

// Node es un árbol genealógico pendiente de creación: el registro raíz más
// sub-árboles opcionales de ancestros. El payload HTTP arma un árbol de
// profundidad 1 (padre/madre directos), pero la orquestación acepta
// cualquier profundidad: un importador de pedigrí puede colgar nodos de
// nodos.
type Node struct {
	Gallo Gallo

	Padre *Node
	Madre *Node

	// Referencias a ancestros ya persistidos. Solo se miran cuando el
	// sub-árbol correspondiente es nil: si el request trae a la vez
	// crear_padre=true y padre_id, gana el flag de creación y el id se
	// ignora (regla de precedencia documentada en DESIGN.md).
	ExistingPadreID *string
	ExistingMadreID *string
}

// buildTree arma el árbol de creación desde un request ya validado y
// normalizado.
func buildTree(userID string, r CreateRequest) *Node {
	root := &Node{
		Gallo: Gallo{
			UserID:               userID,
			Nombre:               r.Nombre,
			CodigoIdentificacion: r.CodigoIdentificacion,
			RazaID:               r.RazaID,
			FechaNacimiento:      parseFecha(r.FechaNacimiento),
			Peso:                 r.Peso,
			Altura:               r.Altura,
			Color:                r.Color,
			Estado:               Estado(r.Estado),
			Procedencia:          r.Procedencia,
			Notas:                r.Notas,
			ColorPlumaje:         r.ColorPlumaje,
			ColorPlaca:           r.ColorPlaca,
			UbicacionPlaca:       r.UbicacionPlaca,
			ColorPatas:           r.ColorPatas,
			Criador:              r.Criador,
			PropietarioActual:    r.PropietarioActual,
			Observaciones:        r.Observaciones,
			NumeroRegistro:       r.NumeroRegistro,
			TipoRegistro:         RegistroPrincipal,
		},
	}

	if r.CrearPadre {
		root.Padre = &Node{
			Gallo: Gallo{
				UserID:               userID,
				Nombre:               r.PadreNombre,
				CodigoIdentificacion: r.PadreCodigo,
				RazaID:               r.PadreRazaID,
				Peso:                 r.PadrePeso,
				Color:                r.PadreColor,
				Estado:               EstadoPadre,
				Procedencia:          r.PadreProcedencia,
				Notas:                r.PadreNotas,
				ColorPlumaje:         r.PadreColorPlumaje,
				ColorPatas:           r.PadreColorPatas,
				Criador:              r.PadreCriador,
				TipoRegistro:         RegistroPadreGenerado,
			},
		}
	} else {
		root.ExistingPadreID = r.PadreID
	}

	if r.CrearMadre {
		root.Madre = &Node{
			Gallo: Gallo{
				UserID:               userID,
				Nombre:               r.MadreNombre,
				CodigoIdentificacion: r.MadreCodigo,
				RazaID:               r.MadreRazaID,
				Peso:                 r.MadrePeso,
				Color:                r.MadreColor,
				Estado:               EstadoMadre,
				Procedencia:          r.MadreProcedencia,
				Notas:                r.MadreNotas,
				ColorPlumaje:         r.MadreColorPlumaje,
				ColorPatas:           r.MadreColorPatas,
				Criador:              r.MadreCriador,
				TipoRegistro:         RegistroMadreGenerada,
			},
		}
	} else {
		root.ExistingMadreID = r.MadreID
	}

	return root
}

// flatten recorre el árbol en profundidad con pila explícita (sin
// recursión, el import de pedigríes profundos no debe depender del stack
// de llamadas) y devuelve los nodos en pre-orden: cada nodo aparece antes
// que sus ancestros.
func flatten(root *Node) []*Node {
	order := make([]*Node, 0, 3)
	stack := []*Node{root}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		order = append(order, n)
		if n.Padre != nil {
			stack = append(stack, n.Padre)
		}
		if n.Madre != nil {
			stack = append(stack, n.Madre)
		}
	}

	return order
}
